package cart

import (
	"sync"

	"github.com/navbug/storefront-core/internal/app/cart/domain"
	"github.com/navbug/storefront-core/internal/pkg/clock"
	"github.com/navbug/storefront-core/internal/pkg/observer"
)

// Snapshot is a consistent read of the cart state: the line items in
// insertion order plus the derived totals computed from exactly those
// items.
type Snapshot struct {
	Items           []*domain.LineItem
	Subtotal        *domain.Money
	ShippingCharges *domain.Money
	Total           *domain.Money
	ShippingInfo    domain.ShippingInfo
}

// Store owns the cart aggregate for one session. Mutations are applied
// under a mutex and listeners are notified with the aggregate's change
// events after the mutation commits, so a listener reading back through
// Snapshot always sees totals consistent with the items.
//
// The store is created per application context and passed by reference;
// there is no package-level singleton.
type Store struct {
	mu        sync.Mutex
	cart      *domain.Cart
	listeners *observer.Registry
}

// NewStore creates a store with an empty cart.
func NewStore(pricing domain.PricingPolicy, clk clock.Clock) *Store {
	return &Store{
		cart:      domain.NewCart(pricing, clk),
		listeners: observer.NewRegistry(),
	}
}

// Subscribe registers a listener for cart change events. It returns the
// unsubscribe function.
func (s *Store) Subscribe(l observer.Listener) func() {
	return s.listeners.Subscribe(l)
}

// Snapshot returns a copy of the current cart state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Items:           s.cart.Items(),
		Subtotal:        s.cart.Subtotal(),
		ShippingCharges: s.cart.ShippingCharges(),
		Total:           s.cart.Total(),
		ShippingInfo:    s.cart.ShippingInfo(),
	}
}

// mutate runs fn on the aggregate under the lock, then notifies
// listeners of whatever events the mutation recorded. A rejected
// mutation records no events, so listeners never hear about it.
func (s *Store) mutate(fn func(*domain.Cart) error) error {
	s.mu.Lock()
	err := fn(s.cart)
	events := s.cart.DrainEvents()
	s.mu.Unlock()

	for _, event := range events {
		s.listeners.Notify(event)
	}
	return err
}
