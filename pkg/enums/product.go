package enums

import "fmt"

// Category represents the catalog's gender/category axis.
type Category string

const (
	CategoryMen    Category = "Men"
	CategoryWomen  Category = "Women"
	CategoryKids   Category = "Kids"
	CategoryUnisex Category = "Unisex"
)

var validCategories = []Category{
	CategoryMen,
	CategoryWomen,
	CategoryKids,
	CategoryUnisex,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}

// Condition represents the physical state of a listing.
type Condition string

const (
	ConditionNew  Condition = "New"
	ConditionUsed Condition = "Used"
)

var validConditions = []Condition{
	ConditionNew,
	ConditionUsed,
}

// String implements fmt.Stringer.
func (c Condition) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Condition.
func (c Condition) IsValid() bool {
	for _, candidate := range validConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCondition converts raw input into a Condition.
func ParseCondition(value string) (Condition, error) {
	for _, candidate := range validConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid condition %q", value)
}
