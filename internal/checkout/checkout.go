// Package checkout computes order totals and turns the cart into an order
// submission against the remote backend.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/cart"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/collection"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/event"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/logger"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/validate"
)

// ErrEmptyCart means checkout was attempted with nothing in the cart.
// The view should offer a return-to-catalogue action instead of a form.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ErrUnknownArea means the requested delivery area is not in the table.
var ErrUnknownArea = errors.New("checkout: unknown delivery area")

// DeliveryArea is a named region with a flat delivery surcharge.
type DeliveryArea struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// Areas is the fixed delivery table. Order matters: the first entry is the
// storefront's preselected default.
var Areas = []DeliveryArea{
	{Name: "Tartous", Cost: 5},
	{Name: "Latakia", Cost: 7},
	{Name: "Homs", Cost: 10},
	{Name: "Damascus", Cost: 12},
	{Name: "Aleppo", Cost: 15},
}

// AreaByName finds a delivery area, case-insensitively.
func AreaByName(name string) (DeliveryArea, bool) {
	return collection.First(Areas, func(a DeliveryArea) bool {
		return strings.EqualFold(a.Name, name)
	})
}

// CustomerInfo is the required checkout contact block. Only presence is
// validated — there is no phone or address shape check.
type CustomerInfo struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// ValidationError carries field-level messages from a rejected submission.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	return fmt.Sprintf("checkout: invalid customer info: %v", map[string]string(e))
}

// Summary is the running totals block shown beside the checkout form.
type Summary struct {
	Area         string  `json:"area"`
	Subtotal     float64 `json:"subtotal"`
	DeliveryCost float64 `json:"deliveryCost"`
	Total        float64 `json:"total"`
}

// Aggregator reads the cart and submits orders. It never mutates the cart
// except to clear it after a confirmed success.
type Aggregator struct {
	cart    *cart.Store
	backend *backend.Client
}

// NewAggregator wires the aggregator to its collaborators.
func NewAggregator(c *cart.Store, b *backend.Client) *Aggregator {
	return &Aggregator{cart: c, backend: b}
}

// Summarize computes subtotal, delivery cost and total for the selected
// area. Changing the area only changes the totals — never the cart.
func (a *Aggregator) Summarize(areaName string) (Summary, error) {
	area, ok := AreaByName(areaName)
	if !ok {
		return Summary{}, fmt.Errorf("%w: %q", ErrUnknownArea, areaName)
	}

	subtotal := a.cart.Subtotal()
	return Summary{
		Area:         area.Name,
		Subtotal:     subtotal,
		DeliveryCost: area.Cost,
		Total:        subtotal + area.Cost,
	}, nil
}

// BuildOrder assembles the outbound payload from the current cart without
// submitting it. Lines are snapshots: later cart edits do not touch an
// order already built.
func (a *Aggregator) BuildOrder(info CustomerInfo, areaName string) (models.Order, error) {
	items := a.cart.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	summary, err := a.Summarize(areaName)
	if err != nil {
		return models.Order{}, err
	}

	lines := collection.Map(items, func(i models.CartItem) models.OrderLine {
		return models.OrderLine{
			ProductID: i.ID,
			Name:      i.Name,
			Quantity:  i.Quantity,
			Price:     i.Price,
		}
	})

	return models.Order{
		Name:     info.Name,
		Phone:    info.Phone,
		Address:  info.Address,
		Area:     summary.Area,
		Products: lines,
		Subtotal: summary.Subtotal,
		Total:    summary.Total,
		Status:   models.OrderPending,
	}, nil
}

// Submit validates, builds and transmits the order.
//
// Success clears the cart; any failure — validation, transport, or a
// non-2xx verdict — leaves the cart untouched so the user can retry.
func (a *Aggregator) Submit(ctx context.Context, info CustomerInfo, areaName string) (models.Order, error) {
	if errs := validate.Struct(info); validate.HasErrors(errs) {
		return models.Order{}, ValidationError(errs)
	}

	order, err := a.BuildOrder(info, areaName)
	if err != nil {
		return models.Order{}, err
	}

	if err := a.backend.SendOrder(ctx, order); err != nil {
		return models.Order{}, err
	}

	a.cart.ClearCart()
	event.Fire(event.OrderPlaced, order)
	logger.Info("checkout: order placed", "area", order.Area, "total", order.Total, "lines", len(order.Products))

	return order, nil
}
