package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/navbug/storefront-core/internal/app/catalog/contracts"
	"github.com/navbug/storefront-core/internal/app/catalog/domain"
)

// CatalogClient implements contracts.CatalogService against the
// storefront REST API. Query parameter names follow the API's MongoDB
// style operators: price[gte] and price[lte] for the price range.
type CatalogClient struct {
	client *Client
}

// NewCatalogClient creates a catalog client on the shared Client.
func NewCatalogClient(client *Client) *CatalogClient {
	return &CatalogClient{client: client}
}

var _ contracts.CatalogService = (*CatalogClient)(nil)

type productDTO struct {
	ID           string      `json:"_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	Price        float64     `json:"price"`
	Stock        int         `json:"stock"`
	Image        string      `json:"image"`
	FastDelivery bool        `json:"fastDelivery"`
	Reviews      []reviewDTO `json:"reviews"`
}

type reviewDTO struct {
	UserID    string    `json:"user"`
	Rating    int       `json:"rating"`
	Text      string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
}

type queryResponse struct {
	FilteredProducts []productDTO `json:"filteredProducts"`
	HasMore          bool         `json:"hasMore"`
}

// Query resolves one page of the listing.
func (c *CatalogClient) Query(ctx context.Context, req contracts.QueryRequest) (*contracts.QueryResult, error) {
	q := url.Values{}
	q.Set("sort", string(req.SortKey))

	if req.Category != domain.CategoryAll {
		q.Set("category", string(req.Category))
	}
	if req.SearchKeyword != "" {
		q.Set("search", req.SearchKeyword)
	}
	if !req.Filters.Price.IsZero() {
		q.Set("price[gte]", strconv.FormatFloat(req.Filters.Price.Min, 'f', -1, 64))
		q.Set("price[lte]", strconv.FormatFloat(req.Filters.Price.Max, 'f', -1, 64))
	}
	if req.Filters.MinRating > 0 {
		q.Set("rating", strconv.FormatFloat(req.Filters.MinRating, 'f', -1, 64))
	}
	if req.Filters.FastDeliveryOnly {
		q.Set("fastDelivery", "true")
	}
	if req.Filters.InStockOnly {
		q.Set("inStock", "true")
	}
	// Page 0 asks for the default first page without pagination.
	if req.Page > 0 {
		q.Set("page", strconv.Itoa(req.Page))
		q.Set("limit", strconv.Itoa(req.PageSize))
	}

	var resp queryResponse
	if err := c.client.get(ctx, "/products", q, &resp); err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(resp.FilteredProducts))
	for i := range resp.FilteredProducts {
		products[i] = resp.FilteredProducts[i].toDomain()
	}
	return &contracts.QueryResult{
		Products: products,
		HasMore:  resp.HasMore,
	}, nil
}

// GetProduct retrieves a single product with its reviews.
func (c *CatalogClient) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var dto productDTO
	if err := c.client.get(ctx, "/products/"+url.PathEscape(productID), nil, &dto); err != nil {
		return nil, fmt.Errorf("get product %s: %w", productID, err)
	}
	return dto.toDomain(), nil
}

// AddReview appends a customer review to a product.
func (c *CatalogClient) AddReview(ctx context.Context, productID string, review domain.Review) error {
	body := map[string]any{
		"userId": review.UserID,
		"rating": review.Rating,
		"review": review.Text,
	}
	return c.client.send(ctx, http.MethodPatch, "/addReview/"+url.PathEscape(productID), body, nil)
}

func (d *productDTO) toDomain() *domain.Product {
	reviews := make([]domain.Review, len(d.Reviews))
	for i, r := range d.Reviews {
		reviews[i] = domain.Review{
			UserID:    r.UserID,
			Rating:    r.Rating,
			Text:      r.Text,
			CreatedAt: r.CreatedAt,
		}
	}
	return &domain.Product{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Category:     domain.Category(d.Category),
		Price:        d.Price,
		Stock:        d.Stock,
		Image:        d.Image,
		FastDelivery: d.FastDelivery,
		Reviews:      reviews,
	}
}
