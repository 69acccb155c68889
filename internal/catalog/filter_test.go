package catalog_test

import (
	"testing"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/catalog"
)

var listing = []models.Product{
	{ID: "1", Name: "Premium Notebook", Description: "leather cover", Price: 24.99, Category: "Notebooks"},
	{ID: "2", Name: "Fountain Pen Set", Description: "ink cartridges", Price: 45.99, Category: "Pens"},
	{ID: "3", Name: "Watercolor Paper", Description: "20 sheets", Price: 18.99, Category: "Paper"},
	{ID: "4", Name: "Ballpoint Pen", Description: "smooth blue ink", Price: 2.50, Category: "Pens"},
	{ID: "5", Name: "Sticky Notes", Description: "pack of 12", Price: 10.00, Category: "Office supplies"},
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.Product, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v want %v", gotIDs, want)
		}
	}
}

func TestNeutralFilterReturnsAllInOrder(t *testing.T) {
	f := catalog.NewFilter()
	assertIDs(t, f.Apply(listing), "1", "2", "3", "4", "5")
}

func TestQueryMatchesNameAndDescription(t *testing.T) {
	f := catalog.NewFilter()

	f.Query = "pen"
	assertIDs(t, f.Apply(listing), "2", "4") // name matches

	f.Query = "SHEETS"
	assertIDs(t, f.Apply(listing), "3") // description match, case-insensitive

	f.Query = "telescope"
	assertIDs(t, f.Apply(listing))
}

func TestCategoryCaseInsensitive(t *testing.T) {
	f := catalog.NewFilter()
	f.Category = "pens"
	assertIDs(t, f.Apply(listing), "2", "4")

	for _, p := range f.Apply(listing) {
		if p.Category != "Pens" {
			t.Errorf("product %s leaked through the Pens filter", p.ID)
		}
	}
}

func TestPriceRanges(t *testing.T) {
	cases := []struct {
		rangeID string
		want    []string
	}{
		{"under-10", []string{"4"}},
		{"10-25", []string{"1", "3", "5"}},
		{"25-50", []string{"2"}},
		{"over-50", nil},
		{"all", []string{"1", "2", "3", "4", "5"}},
	}

	for _, tc := range cases {
		f := catalog.NewFilter()
		f.PriceRange = tc.rangeID
		assertIDs(t, f.Apply(listing), tc.want...)
	}
}

// A price sitting exactly on a band edge belongs to both adjacent bands.
func TestBoundaryPriceMatchesBothBands(t *testing.T) {
	edge := []models.Product{{ID: "x", Name: "Edge", Price: 10.00, Category: "Pens"}}

	for _, rangeID := range []string{"under-10", "10-25"} {
		f := catalog.NewFilter()
		f.PriceRange = rangeID
		if len(f.Apply(edge)) != 1 {
			t.Errorf("price 10.00 should match band %q", rangeID)
		}
	}
}

func TestSetCategoryResetsPriceRange(t *testing.T) {
	f := catalog.NewFilter()
	f.PriceRange = "over-50"

	f.SetCategory("Pens")

	if f.PriceRange != catalog.PriceRangeAll {
		t.Errorf("price range not reset: %q", f.PriceRange)
	}
	if f.Category != "Pens" {
		t.Errorf("category not set: %q", f.Category)
	}
}

func TestPredicatesCompose(t *testing.T) {
	f := catalog.NewFilter()
	f.Query = "pen"
	f.Category = "Pens"
	f.PriceRange = "under-10"

	assertIDs(t, f.Apply(listing), "4")
}

func TestUnknownPriceRangePassesEverything(t *testing.T) {
	f := catalog.NewFilter()
	f.PriceRange = "mystery-band"
	assertIDs(t, f.Apply(listing), "1", "2", "3", "4", "5")
}
