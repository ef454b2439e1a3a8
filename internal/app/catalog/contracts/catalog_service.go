package contracts

import (
	"context"

	"github.com/navbug/storefront-core/internal/app/catalog/domain"
)

// QueryRequest carries the full listing state for one catalog query.
// Page 0 asks for the service's default first page without pagination
// metadata; zero-valued filters are unconstrained.
type QueryRequest struct {
	SortKey       domain.SortKey
	SearchKeyword string
	Category      domain.Category
	Filters       domain.Filters
	Page          int
	PageSize      int
}

// QueryResult is one materialized page of products plus the signal
// that a subsequent page exists.
type QueryResult struct {
	Products []*domain.Product
	HasMore  bool
}

// CatalogService is the remote product catalog. All filtering, sorting
// and pagination happens server-side; the SDK only shapes the request
// and materializes the result. Any transport or server failure is an
// error; the SDK does not interpret status codes beyond that and never
// retries on its own.
type CatalogService interface {
	// Query resolves the current listing state into one page of
	// products.
	Query(ctx context.Context, req QueryRequest) (*QueryResult, error)

	// GetProduct retrieves a single product with its reviews.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// AddReview appends a customer review to a product.
	AddReview(ctx context.Context, productID string, review domain.Review) error
}
