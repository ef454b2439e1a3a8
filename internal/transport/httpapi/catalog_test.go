package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/navbug/storefront-core/internal/app/catalog/contracts"
	"github.com/navbug/storefront-core/internal/app/catalog/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func TestCatalogClient_Query(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/products", r.URL.Path)
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"filteredProducts": [
				{
					"_id": "p1",
					"title": "Airdopes 141",
					"category": "earbuds",
					"price": 1099,
					"stock": 12,
					"fastDelivery": true,
					"reviews": [{"user": "u1", "rating": 4, "review": "solid"}]
				},
				{"_id": "p2", "title": "Rockerz 255", "category": "neckbands", "price": 999, "stock": 0}
			],
			"hasMore": true
		}`))
	})

	c := NewCatalogClient(newTestClient(t, handler))

	res, err := c.Query(context.Background(), contracts.QueryRequest{
		SortKey:       domain.SortLowestPrice,
		SearchKeyword: "airdopes",
		Category:      domain.CategoryEarbuds,
		Filters: domain.Filters{
			Price:            domain.PriceRange{Min: 500, Max: 3000},
			MinRating:        4,
			FastDeliveryOnly: true,
			InStockOnly:      true,
		},
		Page:     2,
		PageSize: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Lowest Price"}, gotQuery["sort"])
	assert.Equal(t, []string{"earbuds"}, gotQuery["category"])
	assert.Equal(t, []string{"airdopes"}, gotQuery["search"])
	assert.Equal(t, []string{"500"}, gotQuery["price[gte]"])
	assert.Equal(t, []string{"3000"}, gotQuery["price[lte]"])
	assert.Equal(t, []string{"4"}, gotQuery["rating"])
	assert.Equal(t, []string{"true"}, gotQuery["fastDelivery"])
	assert.Equal(t, []string{"true"}, gotQuery["inStock"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"6"}, gotQuery["limit"])

	require.Len(t, res.Products, 2)
	assert.True(t, res.HasMore)
	assert.Equal(t, "p1", res.Products[0].ID)
	assert.Equal(t, domain.CategoryEarbuds, res.Products[0].Category)
	assert.Equal(t, 4.0, res.Products[0].AverageRating())
	assert.False(t, res.Products[1].InStock())
}

func TestCatalogClient_Query_OmitsUnconstrained(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"filteredProducts": [], "hasMore": false}`))
	})

	c := NewCatalogClient(newTestClient(t, handler))
	_, err := c.Query(context.Background(), contracts.QueryRequest{SortKey: domain.SortFeatured})
	require.NoError(t, err)

	assert.Equal(t, []string{"Featured"}, gotQuery["sort"])
	for _, key := range []string{"category", "search", "price[gte]", "price[lte]", "rating", "fastDelivery", "inStock", "page", "limit"} {
		assert.NotContains(t, gotQuery, key)
	}
}

func TestCatalogClient_Query_ServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	c := NewCatalogClient(newTestClient(t, handler))
	_, err := c.Query(context.Background(), contracts.QueryRequest{SortKey: domain.SortFeatured})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestCatalogClient_GetProduct(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/p1", r.URL.Path)
		_, _ = w.Write([]byte(`{"_id": "p1", "title": "Airdopes 141", "price": 1099, "stock": 3}`))
	})

	c := NewCatalogClient(newTestClient(t, handler))
	p, err := c.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Airdopes 141", p.Title)
	assert.Equal(t, 3, p.Stock)
}

func TestCatalogClient_AddReview(t *testing.T) {
	var gotBody []byte
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/addReview/p1", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	c := NewCatalogClient(newTestClient(t, handler))
	err := c.AddReview(context.Background(), "p1", domain.Review{UserID: "u1", Rating: 5, Text: "great"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId": "u1", "rating": 5, "review": "great"}`, string(gotBody))
}
