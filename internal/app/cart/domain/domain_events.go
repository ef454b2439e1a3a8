package domain

import "time"

// Event is the base interface for cart change events. Events feed the
// store's listener fan-out so the UI layer can re-render after every
// mutation.
type Event interface {
	EventType() string
}

// ItemAddedEvent is emitted when a new line item enters the cart.
type ItemAddedEvent struct {
	ProductID string
	Title     string
	UnitPrice *Money
	AddedAt   time.Time
}

func (e *ItemAddedEvent) EventType() string { return "cart.item_added" }

// ItemRemovedEvent is emitted when a line item leaves the cart.
type ItemRemovedEvent struct {
	ProductID string
	RemovedAt time.Time
}

func (e *ItemRemovedEvent) EventType() string { return "cart.item_removed" }

// QuantityChangedEvent is emitted when a line item's quantity changes.
type QuantityChangedEvent struct {
	ProductID   string
	OldQuantity int
	NewQuantity int
	ChangedAt   time.Time
}

func (e *QuantityChangedEvent) EventType() string { return "cart.quantity_changed" }

// ShippingInfoSavedEvent is emitted when the shipping draft is replaced.
type ShippingInfoSavedEvent struct {
	Country string
	SavedAt time.Time
}

func (e *ShippingInfoSavedEvent) EventType() string { return "cart.shipping_info_saved" }

// ResetEvent is emitted when the cart returns to its initial state,
// e.g. after an order was accepted.
type ResetEvent struct {
	ResetAt time.Time
}

func (e *ResetEvent) EventType() string { return "cart.reset" }
