package backend

import (
	"context"
	"fmt"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
)

// Orders lists all orders (admin view).
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	resp, err := httpGet(ctx, c.url("/api/getorders"), c.timeout)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, statusError(resp, "failed to fetch orders")
	}

	var orders []models.Order
	if err := decodeList(resp.Raw, []string{"orders"}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches a single order by id (admin view).
func (c *Client) Order(ctx context.Context, id string) (*models.Order, error) {
	if id == "" {
		return nil, fmt.Errorf("backend: get order: empty id")
	}

	resp, err := httpGet(ctx, c.url("/api/getorder/"+id), c.timeout)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, statusError(resp, "failed to fetch order")
	}

	var order models.Order
	if err := resp.JSON(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SendOrder submits a checkout payload. The caller decides what to do with
// the cart based on the outcome; this method only reports it.
func (c *Client) SendOrder(ctx context.Context, order models.Order) error {
	resp, err := httpPostJSON(ctx, c.url("/api/sendorder"), order, c.timeout)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return statusError(resp, "failed to place order")
	}
	return nil
}
