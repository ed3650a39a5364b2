package enums

import "fmt"

// PriceBand represents a selectable price facet.
type PriceBand string

const (
	PriceBandUnder100 PriceBand = "under100"
	PriceBand100To150 PriceBand = "100to150"
	PriceBandOver150  PriceBand = "over150"
)

var validPriceBands = []PriceBand{
	PriceBandUnder100,
	PriceBand100To150,
	PriceBandOver150,
}

// String implements fmt.Stringer.
func (b PriceBand) String() string {
	return string(b)
}

// IsValid reports whether the value is a known PriceBand.
func (b PriceBand) IsValid() bool {
	for _, candidate := range validPriceBands {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParsePriceBand converts raw input into a PriceBand.
func ParsePriceBand(value string) (PriceBand, error) {
	for _, candidate := range validPriceBands {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid price band %q", value)
}
