// Package catalog derives the visible product subset from the raw listing
// and supplies the catalogue when the backend cannot: live fetch first,
// then the local snapshot, then built-in sample data.
package catalog

import (
	"math"
	"strings"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/collection"
)

// CategoryAll matches every category.
const CategoryAll = "All"

// Categories is the fixed set offered by the storefront, sentinel first.
var Categories = []string{
	CategoryAll,
	"Notebooks",
	"Bags",
	"Pens",
	"Paper",
	"Office supplies",
	"Art Supplies",
	"Other tools",
}

// PriceRange is a named inclusive price band. Boundary prices (exactly
// 10.00, 25.00, 50.00) deliberately fall into both adjacent bands.
type PriceRange struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// PriceRangeAll matches every price.
const PriceRangeAll = "all"

// PriceRanges is the fixed set of bands, sentinel first.
var PriceRanges = []PriceRange{
	{ID: PriceRangeAll, Label: "All Prices", Min: 0, Max: math.Inf(1)},
	{ID: "under-10", Label: "Under $10", Min: 0, Max: 10},
	{ID: "10-25", Label: "$10 - $25", Min: 10, Max: 25},
	{ID: "25-50", Label: "$25 - $50", Min: 25, Max: 50},
	{ID: "over-50", Label: "Over $50", Min: 50, Max: math.Inf(1)},
}

// PriceRangeByID looks up a band. Unknown ids report false and the caller
// should treat the filter as "all".
func PriceRangeByID(id string) (PriceRange, bool) {
	return collection.First(PriceRanges, func(r PriceRange) bool { return r.ID == id })
}

// Filter is the composed storefront filter state. The zero value is NOT the
// neutral filter — use NewFilter.
type Filter struct {
	Query      string `json:"query"`
	Category   string `json:"category"`
	PriceRange string `json:"priceRange"`
}

// NewFilter returns the neutral filter that passes every product through.
func NewFilter() Filter {
	return Filter{Query: "", Category: CategoryAll, PriceRange: PriceRangeAll}
}

// SetCategory selects a category AND resets the price range back to "all".
// The reset is an observable storefront behaviour, not an implementation
// accident: the two selectors are coupled in the UI.
func (f *Filter) SetCategory(category string) {
	f.Category = category
	f.PriceRange = PriceRangeAll
}

// Apply returns the order-preserving subsequence of products matching all
// three predicates.
func (f Filter) Apply(products []models.Product) []models.Product {
	return collection.Filter(products, f.Matches)
}

// Matches reports whether a single product passes the filter.
func (f Filter) Matches(p models.Product) bool {
	return f.matchesQuery(p) && f.matchesCategory(p) && f.matchesPrice(p)
}

func (f Filter) matchesQuery(p models.Product) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func (f Filter) matchesCategory(p models.Product) bool {
	if f.Category == "" || strings.EqualFold(f.Category, CategoryAll) {
		return true
	}
	return strings.EqualFold(f.Category, p.Category)
}

func (f Filter) matchesPrice(p models.Product) bool {
	band, ok := PriceRangeByID(f.PriceRange)
	if !ok {
		return true
	}
	return p.Price >= band.Min && p.Price <= band.Max
}
