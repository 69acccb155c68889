package controllers

import (
	"errors"
	"net/http"

	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/checkout"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/ctx"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/metrics"
)

// CheckoutController turns the cart into an order.
type CheckoutController struct {
	agg *checkout.Aggregator
}

func NewCheckoutController(agg *checkout.Aggregator) *CheckoutController {
	return &CheckoutController{agg: agg}
}

// Areas lists the delivery table in its display order.
func (ctl *CheckoutController) Areas(c *ctx.Context) {
	c.Success(checkout.Areas)
}

// Summary returns subtotal, delivery cost and total for the area query
// parameter. Defaults to the first area in the table.
func (ctl *CheckoutController) Summary(c *ctx.Context) {
	area := c.DefaultQuery("area", checkout.Areas[0].Name)

	summary, err := ctl.agg.Summarize(area)
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return
	}
	c.Success(summary)
}

// Submit validates the contact block and sends the order upstream.
func (ctl *CheckoutController) Submit(c *ctx.Context) {
	var input struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Area    string `json:"area"`
	}
	if !c.BindJSON(&input) {
		return
	}
	if input.Area == "" {
		input.Area = checkout.Areas[0].Name
	}

	info := checkout.CustomerInfo{Name: input.Name, Phone: input.Phone, Address: input.Address}
	order, err := ctl.agg.Submit(c.Context(), info, input.Area)
	if err != nil {
		ctl.submitError(c, err)
		return
	}

	metrics.OrdersSubmitted.WithLabelValues("accepted").Inc()
	c.Created(order)
}

func (ctl *CheckoutController) submitError(c *ctx.Context, err error) {
	var verr checkout.ValidationError
	if errors.As(err, &verr) {
		metrics.OrdersSubmitted.WithLabelValues("rejected").Inc()
		c.ValidationError(verr)
		return
	}

	switch {
	case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrUnknownArea):
		metrics.OrdersSubmitted.WithLabelValues("rejected").Inc()
		c.Error(http.StatusBadRequest, err.Error())
	default:
		metrics.OrdersSubmitted.WithLabelValues("failed").Inc()
		var serr *backend.StatusError
		if errors.As(err, &serr) {
			c.Error(http.StatusBadGateway, serr.Message)
			return
		}
		c.Error(http.StatusBadGateway, "Order could not reach the shop")
	}
}
