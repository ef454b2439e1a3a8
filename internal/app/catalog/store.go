package catalog

import (
	"sync"

	"github.com/navbug/storefront-core/internal/app/catalog/domain"
	"github.com/navbug/storefront-core/internal/pkg/observer"
)

// ApplyMode says how a query result lands in the store: a replace
// swaps the whole product list (new filter/sort/search/category), an
// append concatenates the next page after the existing list.
type ApplyMode int

const (
	ModeReplace ApplyMode = iota
	ModeAppend
)

// QueryState is the current listing view: what the customer asked for
// and the page(s) of products materialized for it.
type QueryState struct {
	SortKey       domain.SortKey
	SearchKeyword string
	Category      domain.Category
	Filters       domain.Filters
	Page          int
	Products      []*domain.Product
	HasMore       bool
}

// StateChangedEvent is emitted when sort, search, category or filters
// change. The product list at that moment still reflects the previous
// query; a ProductsUpdatedEvent follows once the requery lands.
type StateChangedEvent struct {
	SortKey       domain.SortKey
	SearchKeyword string
	Category      domain.Category
	Filters       domain.Filters
}

func (e *StateChangedEvent) EventType() string { return "catalog.state_changed" }

// ProductsUpdatedEvent is emitted when a query result is applied.
type ProductsUpdatedEvent struct {
	Mode    ApplyMode
	Count   int
	HasMore bool
}

func (e *ProductsUpdatedEvent) EventType() string { return "catalog.products_updated" }

// Store owns the catalog listing state. Controllers mutate it; the UI
// subscribes and re-renders from Snapshot.
type Store struct {
	mu        sync.Mutex
	state     QueryState
	listeners *observer.Registry
}

// NewStore creates a store with the default view: featured sort, no
// keyword, all categories, no filters, page 1, nothing materialized.
func NewStore() *Store {
	return &Store{
		state: QueryState{
			SortKey:  domain.SortFeatured,
			Page:     1,
			Products: make([]*domain.Product, 0),
		},
		listeners: observer.NewRegistry(),
	}
}

// Subscribe registers a listener for listing events. It returns the
// unsubscribe function.
func (s *Store) Subscribe(l observer.Listener) func() {
	return s.listeners.Subscribe(l)
}

// Snapshot returns a copy of the current listing state. The product
// slice is copied; the products themselves are read-only by contract.
func (s *Store) Snapshot() QueryState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Products = make([]*domain.Product, len(s.state.Products))
	copy(snap.Products, s.state.Products)
	return snap
}

// setQueryInput updates the requested view under the lock and resets
// pagination to the first page, then notifies listeners.
func (s *Store) setQueryInput(update func(*QueryState)) {
	s.mu.Lock()
	update(&s.state)
	s.state.Page = 1
	event := &StateChangedEvent{
		SortKey:       s.state.SortKey,
		SearchKeyword: s.state.SearchKeyword,
		Category:      s.state.Category,
		Filters:       s.state.Filters,
	}
	s.mu.Unlock()

	s.listeners.Notify(event)
}

// applyResult materializes one page of products. In replace mode the
// list is swapped wholesale; in append mode the page is concatenated
// and the store's page advances to the given page number.
func (s *Store) applyResult(mode ApplyMode, page int, products []*domain.Product, hasMore bool) {
	s.mu.Lock()
	switch mode {
	case ModeReplace:
		s.state.Products = make([]*domain.Product, len(products))
		copy(s.state.Products, products)
	case ModeAppend:
		s.state.Products = append(s.state.Products, products...)
	}
	s.state.Page = page
	s.state.HasMore = hasMore
	event := &ProductsUpdatedEvent{
		Mode:    mode,
		Count:   len(s.state.Products),
		HasMore: hasMore,
	}
	s.mu.Unlock()

	s.listeners.Notify(event)
}
