package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/navbug/storefront-core/internal/app/catalog/domain"
)

// AdminClient covers the dashboard's product management endpoints.
// These require the bearer token of an admin account; the API decides
// who is an admin, the SDK just forwards the credential.
type AdminClient struct {
	client *Client
}

// NewAdminClient creates an admin client on the shared Client.
func NewAdminClient(client *Client) *AdminClient {
	return &AdminClient{client: client}
}

// ProductInput is the writable subset of a product.
type ProductInput struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	Image        string  `json:"image"`
	FastDelivery bool    `json:"fastDelivery"`
}

// AddProduct creates a product in the catalog.
func (c *AdminClient) AddProduct(ctx context.Context, input ProductInput) error {
	return c.client.send(ctx, http.MethodPost, "/addProduct", input, nil)
}

// UpdateProduct replaces a product's writable fields.
func (c *AdminClient) UpdateProduct(ctx context.Context, productID string, input ProductInput) error {
	return c.client.send(ctx, http.MethodPut, "/updateProduct/"+url.PathEscape(productID), input, nil)
}

// DeleteProduct removes a product from the catalog.
func (c *AdminClient) DeleteProduct(ctx context.Context, productID string) error {
	return c.client.send(ctx, http.MethodDelete, "/deleteProduct/"+url.PathEscape(productID), nil, nil)
}

// UpdateStock sets a product's inventory count, e.g. after an order
// was fulfilled.
func (c *AdminClient) UpdateStock(ctx context.Context, productID string, stock int) error {
	body := map[string]int{"stock": stock}
	return c.client.send(ctx, http.MethodPatch, "/updateProductStock/"+url.PathEscape(productID), body, nil)
}

// ListAllProducts retrieves the unfiltered catalog for the dashboard
// tables.
func (c *AdminClient) ListAllProducts(ctx context.Context) ([]*domain.Product, error) {
	var resp queryResponse
	if err := c.client.get(ctx, "/products", nil, &resp); err != nil {
		return nil, err
	}
	products := make([]*domain.Product, len(resp.FilteredProducts))
	for i := range resp.FilteredProducts {
		products[i] = resp.FilteredProducts[i].toDomain()
	}
	return products, nil
}
