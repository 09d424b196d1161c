package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// A Filter is the conjunction of the visible-product criteria.
// Zero-valued criteria are vacuously true. The price range is not
// validated: min > max simply matches nothing.
type Filter struct {
	Name       string
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	Category   string
	Status     ProductStatus
	ExactPrice decimal.Decimal
	SortBy     SortKey
}

// Matches reports whether the product satisfies every active criterion.
func (f Filter) Matches(p Product) bool {
	if f.Name != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
		return false
	}

	if p.Price.LessThan(f.MinPrice) {
		return false
	}

	if !f.MaxPrice.IsZero() && p.Price.GreaterThan(f.MaxPrice) {
		return false
	}

	if f.Category != "" && p.Category != f.Category {
		return false
	}

	if f.Status != "" && p.Status != f.Status {
		return false
	}

	if !f.ExactPrice.IsZero() && !p.Price.Equal(f.ExactPrice) {
		return false
	}

	return true
}

// A Page bounds a slice of the filtered sequence.
// Offset is zero-based; both values come from the presentation layer.
type Page struct {
	Offset int
	Limit  int
}

// Slice returns the page of ps clamped to the available length.
// An offset beyond the end yields an empty page.
func (pg Page) Slice(ps []Product) []Product {
	if pg.Offset >= len(ps) || pg.Offset < 0 || pg.Limit <= 0 {
		return nil
	}
	end := pg.Offset + pg.Limit
	if end > len(ps) {
		end = len(ps)
	}
	return ps[pg.Offset:end]
}
