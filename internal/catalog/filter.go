package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/enums"
	pkgerrors "github.com/deepaksuresh242006-wq/snekers-store/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	priceBandFloor   = decimal.NewFromInt(100)
	priceBandCeiling = decimal.NewFromInt(150)
)

// Query captures the buyer-facing filter state: the navbar category/sale
// parameters plus the sidebar facet selections.
type Query struct {
	Category *enums.Category
	SaleOnly bool
	Genders  []enums.Category
	Prices   []enums.PriceBand
}

// SellerLookup resolves a seller id; it reports false for dangling references.
type SellerLookup func(id string) (marketplace.SellerProfile, bool)

// Visible returns the buyer-visible slice of the catalog. It is a pure
// function of its inputs and is recomputed on every call; clauses run in a
// fixed order and short-circuit on the first failure.
func Visible(products []marketplace.Product, lookup SellerLookup, q Query) []marketplace.Product {
	out := make([]marketplace.Product, 0, len(products))
	for _, p := range products {
		if visible(p, lookup, q) {
			out = append(out, p)
		}
	}
	return out
}

func visible(p marketplace.Product, lookup SellerLookup, q Query) bool {
	seller, ok := lookup(p.SellerID)
	if !ok || !seller.IsVerified {
		return false
	}

	// Unisex always matches a specific category query.
	if q.Category != nil && p.Category != *q.Category && p.Category != enums.CategoryUnisex {
		return false
	}

	if q.SaleOnly && !p.OnSale {
		return false
	}

	// Gender facets apply only without a category query; the query parameter
	// takes precedence and facet state mirrors it.
	if q.Category == nil && len(q.Genders) > 0 {
		matched := p.Category == enums.CategoryUnisex
		for _, g := range q.Genders {
			if p.Category == g {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(q.Prices) > 0 {
		matched := false
		for _, band := range q.Prices {
			if bandContains(band, p.Price) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

func bandContains(band enums.PriceBand, price decimal.Decimal) bool {
	switch band {
	case enums.PriceBandUnder100:
		return price.LessThan(priceBandFloor)
	case enums.PriceBand100To150:
		return price.GreaterThanOrEqual(priceBandFloor) && price.LessThanOrEqual(priceBandCeiling)
	case enums.PriceBandOver150:
		return price.GreaterThan(priceBandCeiling)
	}
	return false
}

// ParseQuery builds a Query from browse query parameters. A category
// parameter resets the gender facets to mirror that single category.
func ParseQuery(values url.Values) (Query, error) {
	var q Query

	if raw := strings.TrimSpace(values.Get("category")); raw != "" {
		category, err := enums.ParseCategory(raw)
		if err != nil {
			return Query{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid category").WithDetails(map[string]any{"field": "category"})
		}
		q.Category = &category
		q.Genders = []enums.Category{category}
	}

	if raw := strings.TrimSpace(values.Get("sale")); raw != "" {
		sale, err := strconv.ParseBool(raw)
		if err != nil {
			return Query{}, pkgerrors.New(pkgerrors.CodeValidation, "sale must be a boolean").WithDetails(map[string]any{"field": "sale"})
		}
		q.SaleOnly = sale
	}

	if q.Category == nil {
		for _, raw := range values["gender"] {
			gender, err := enums.ParseCategory(raw)
			if err != nil {
				return Query{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid gender facet").WithDetails(map[string]any{"field": "gender"})
			}
			q.Genders = append(q.Genders, gender)
		}
	}

	for _, raw := range values["price"] {
		band, err := enums.ParsePriceBand(raw)
		if err != nil {
			return Query{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid price facet").WithDetails(map[string]any{"field": "price"})
		}
		q.Prices = append(q.Prices, band)
	}

	return q, nil
}
