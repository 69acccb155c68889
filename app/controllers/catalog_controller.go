package controllers

import (
	"github.com/ahmadsvu/stationery-hub-frontend/internal/catalog"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/ctx"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/metrics"
)

// CatalogController serves the public product and blog listings.
type CatalogController struct {
	provider *catalog.Provider
}

func NewCatalogController(provider *catalog.Provider) *CatalogController {
	return &CatalogController{provider: provider}
}

// Products lists the catalogue, filtered by the q, category and price
// query parameters. The response carries the source that answered so the
// client can surface degraded mode.
func (ctl *CatalogController) Products(c *ctx.Context) {
	result := ctl.provider.Products(c.Context())
	metrics.CatalogServes.WithLabelValues("products", string(result.Source)).Inc()

	filter := catalog.Filter{
		Query:      c.Query("q"),
		Category:   c.DefaultQuery("category", catalog.CategoryAll),
		PriceRange: c.DefaultQuery("price", catalog.PriceRangeAll),
	}

	c.Success(map[string]any{
		"products": filter.Apply(result.Products),
		"source":   result.Source,
	})
}

// Product returns a single product by id.
func (ctl *CatalogController) Product(c *ctx.Context) {
	id := c.Param("id")
	result := ctl.provider.Products(c.Context())
	metrics.CatalogServes.WithLabelValues("products", string(result.Source)).Inc()

	for _, p := range result.Products {
		if p.ID == id {
			c.Success(p)
			return
		}
	}
	c.NotFound("Product not found")
}

// Categories lists the fixed category set, "All" first.
func (ctl *CatalogController) Categories(c *ctx.Context) {
	c.Success(catalog.Categories)
}

// PriceRanges lists the fixed price bands.
func (ctl *CatalogController) PriceRanges(c *ctx.Context) {
	c.Success(catalog.PriceRanges)
}

// Blogs lists blog posts with the same degraded-mode provenance as
// Products.
func (ctl *CatalogController) Blogs(c *ctx.Context) {
	result := ctl.provider.Blogs(c.Context())
	metrics.CatalogServes.WithLabelValues("blogs", string(result.Source)).Inc()

	c.Success(map[string]any{
		"posts":  result.Posts,
		"source": result.Source,
	})
}
