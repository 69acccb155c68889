package backend

import (
	"context"
	"fmt"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
)

// ProductInput carries the admin CRUD form fields for a product.
// Image is optional; when present it is sent as a multipart file part.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"numeric,min=0"`
	Category    string  `json:"category" validate:"required"`
	ImageName   string  `json:"imageName,omitempty"`
	Image       []byte  `json:"-"`
}

func (in ProductInput) fields() map[string]string {
	return map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"price":       formatPrice(in.Price),
		"category":    in.Category,
	}
}

// Products lists the full catalogue.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	resp, err := httpGet(ctx, c.url("/product/get"), c.timeout)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, statusError(resp, "failed to fetch products")
	}

	var products []models.Product
	if err := decodeList(resp.Raw, []string{"products"}, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AddProduct creates a product via the multipart admin endpoint.
func (c *Client) AddProduct(ctx context.Context, in ProductInput) error {
	resp, err := httpPostMultipart(ctx, c.url("/product/add"), in.fields(), "image", in.ImageName, in.Image, c.timeout)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return statusError(resp, "failed to add product")
	}
	return nil
}

// UpdateProduct replaces a product's fields (and optionally its image).
func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) error {
	if id == "" {
		return fmt.Errorf("backend: update product: empty id")
	}

	resp, err := httpPutMultipart(ctx, c.url("/product/update/"+id), in.fields(), "image", in.ImageName, in.Image, c.timeout)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return statusError(resp, "failed to update product")
	}
	return nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("backend: delete product: empty id")
	}

	resp, err := httpDelete(ctx, c.url("/product/delete/"+id), c.timeout)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return statusError(resp, "failed to delete product")
	}
	return nil
}
