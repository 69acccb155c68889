package controllers

import (
	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/cart"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/ctx"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/metrics"
)

// CartController exposes the cart over HTTP.
type CartController struct {
	store *cart.Store
}

func NewCartController(store *cart.Store) *CartController {
	return &CartController{store: store}
}

func (ctl *CartController) state() map[string]any {
	return map[string]any{
		"items":    ctl.store.Items(),
		"subtotal": ctl.store.Subtotal(),
		"count":    ctl.store.Count(),
		"open":     ctl.store.IsOpen(),
	}
}

// Show returns the full cart state.
func (ctl *CartController) Show(c *ctx.Context) {
	c.Success(ctl.state())
}

// Add puts a product in the cart, merging with an existing line.
func (ctl *CartController) Add(c *ctx.Context) {
	var input struct {
		ID       string  `json:"_id"      validate:"required"`
		Name     string  `json:"name"     validate:"required"`
		Price    float64 `json:"price"    validate:"numeric,min=0"`
		Image    string  `json:"image"`
		Category string  `json:"category"`
	}
	if !c.BindJSON(&input) {
		return
	}

	ctl.store.AddToCart(models.Product{
		ID:       input.ID,
		Name:     input.Name,
		Price:    input.Price,
		Image:    input.Image,
		Category: input.Category,
	})
	metrics.CartOperations.WithLabelValues("add").Inc()
	c.Success(ctl.state())
}

// UpdateQuantity sets an exact line quantity; zero or less removes the line.
func (ctl *CartController) UpdateQuantity(c *ctx.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if !c.BindJSON(&input) {
		return
	}

	ctl.store.UpdateQuantity(c.Param("id"), input.Quantity)
	metrics.CartOperations.WithLabelValues("update").Inc()
	c.Success(ctl.state())
}

// Remove drops a line from the cart. Removing an absent line is a no-op.
func (ctl *CartController) Remove(c *ctx.Context) {
	ctl.store.RemoveFromCart(c.Param("id"))
	metrics.CartOperations.WithLabelValues("remove").Inc()
	c.Success(ctl.state())
}

// Clear empties the cart.
func (ctl *CartController) Clear(c *ctx.Context) {
	ctl.store.ClearCart()
	metrics.CartOperations.WithLabelValues("clear").Inc()
	c.Success(ctl.state())
}

// Toggle flips the drawer open/closed flag.
func (ctl *CartController) Toggle(c *ctx.Context) {
	open := ctl.store.ToggleCart()
	c.Success(map[string]any{"open": open})
}
