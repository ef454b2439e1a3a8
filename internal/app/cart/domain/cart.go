package domain

import (
	"github.com/navbug/storefront-core/internal/pkg/clock"
)

// PricingPolicy holds the shipping charge derivation inputs: orders
// above the threshold ship free, everything else pays the flat fee.
type PricingPolicy struct {
	FreeShippingOver *Money
	FlatShippingFee  *Money
}

// DefaultPricingPolicy returns the storefront defaults (free shipping
// over 1000, flat fee 200).
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		FreeShippingOver: MoneyFromInt(1000),
		FlatShippingFee:  MoneyFromInt(200),
	}
}

// Cart is the aggregate root for the shopping cart: ordered line items,
// the shipping address draft, and the derived totals. Every mutating
// method recomputes the derived fields before returning, so subtotal,
// shippingCharges and total are never stale relative to the items.
//
// The cart lives in memory for the session only; nothing here touches
// I/O, and the only failures are validation rejections that leave the
// state unchanged.
type Cart struct {
	items           []*LineItem
	shippingInfo    ShippingInfo
	subtotal        *Money
	shippingCharges *Money
	total           *Money

	pricing PricingPolicy
	clock   clock.Clock

	// Change events for the store's listener fan-out.
	events []Event
}

// NewCart creates an empty cart.
func NewCart(pricing PricingPolicy, clk clock.Clock) *Cart {
	return &Cart{
		items:           make([]*LineItem, 0),
		subtotal:        ZeroMoney(),
		shippingCharges: ZeroMoney(),
		total:           ZeroMoney(),
		pricing:         pricing,
		clock:           clk,
		events:          make([]Event, 0),
	}
}

// AddItem appends a new line item with quantity 1 from the given
// product snapshot. Adding a product that is already in the cart is
// rejected with ErrItemAlreadyInCart and changes nothing.
func (c *Cart) AddItem(p ProductSnapshot) error {
	if p.ID == "" {
		return ErrEmptyProductID
	}
	if c.findItem(p.ID) != nil {
		return ErrItemAlreadyInCart
	}

	c.items = append(c.items, &LineItem{
		ProductID: p.ID,
		Title:     p.Title,
		UnitPrice: p.Price.Copy(),
		Image:     p.Image,
		Quantity:  1,
		Stock:     p.Stock,
	})
	c.recomputeTotals()

	c.recordEvent(&ItemAddedEvent{
		ProductID: p.ID,
		Title:     p.Title,
		UnitPrice: p.Price.Copy(),
		AddedAt:   c.clock.Now(),
	})
	return nil
}

// RemoveItem removes the line item for the given product id. Removing
// an id that is not in the cart is a no-op.
func (c *Cart) RemoveItem(productID string) error {
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.recomputeTotals()
			c.recordEvent(&ItemRemovedEvent{
				ProductID: productID,
				RemovedAt: c.clock.Now(),
			})
			return nil
		}
	}
	return nil
}

// ChangeQuantity sets the quantity of an existing line item. Values
// outside [1, stock snapshot] are rejected with ErrQuantityOutOfRange;
// the caller is expected to clamp, the cart never does. The stock bound
// is advisory only: it is the inventory seen at query time, and the
// order service remains the authority at checkout.
func (c *Cart) ChangeQuantity(productID string, newQuantity int) error {
	item := c.findItem(productID)
	if item == nil {
		return ErrItemNotInCart
	}
	if newQuantity < 1 || newQuantity > item.Stock {
		return ErrQuantityOutOfRange
	}

	old := item.Quantity
	item.Quantity = newQuantity
	c.recomputeTotals()

	c.recordEvent(&QuantityChangedEvent{
		ProductID:   productID,
		OldQuantity: old,
		NewQuantity: newQuantity,
		ChangedAt:   c.clock.Now(),
	})
	return nil
}

// SaveShippingInfo replaces the shipping draft wholesale. The country
// must be one of SupportedCountries; other fields are free text.
func (c *Cart) SaveShippingInfo(info ShippingInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	c.shippingInfo = info
	c.recordEvent(&ShippingInfoSavedEvent{
		Country: info.Country,
		SavedAt: c.clock.Now(),
	})
	return nil
}

// Reset restores the initial empty state: no items, zero totals, blank
// shipping draft. Called after the order service confirmed an order.
func (c *Cart) Reset() {
	c.items = make([]*LineItem, 0)
	c.shippingInfo = ShippingInfo{}
	c.recomputeTotals()

	c.recordEvent(&ResetEvent{ResetAt: c.clock.Now()})
}

// RecomputeTotals re-derives subtotal, shippingCharges and total from
// the line items. Idempotent; mutating methods call it themselves, so
// callers only need it after constructing a cart from raw parts.
func (c *Cart) RecomputeTotals() {
	c.recomputeTotals()
}

func (c *Cart) recomputeTotals() {
	subtotal := ZeroMoney()
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	c.subtotal = subtotal

	switch {
	case len(c.items) == 0:
		// An empty cart has nothing to ship.
		c.shippingCharges = ZeroMoney()
	case subtotal.GreaterThan(c.pricing.FreeShippingOver):
		c.shippingCharges = ZeroMoney()
	default:
		c.shippingCharges = c.pricing.FlatShippingFee.Copy()
	}

	c.total = c.subtotal.Add(c.shippingCharges)
}

// Items returns the line items in insertion order. The slice and its
// entries are copies; mutating them does not touch the cart.
func (c *Cart) Items() []*LineItem {
	out := make([]*LineItem, len(c.items))
	for i, item := range c.items {
		out[i] = item.copy()
	}
	return out
}

// ItemCount returns the number of line items.
func (c *Cart) ItemCount() int { return len(c.items) }

// IsEmpty returns true if the cart has no line items.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Subtotal returns the derived sum of price times quantity.
func (c *Cart) Subtotal() *Money { return c.subtotal.Copy() }

// ShippingCharges returns the derived shipping charge.
func (c *Cart) ShippingCharges() *Money { return c.shippingCharges.Copy() }

// Total returns subtotal plus shipping charges.
func (c *Cart) Total() *Money { return c.total.Copy() }

// ShippingInfo returns the current shipping draft.
func (c *Cart) ShippingInfo() ShippingInfo { return c.shippingInfo }

// DrainEvents returns the recorded change events and clears them.
func (c *Cart) DrainEvents() []Event {
	events := c.events
	c.events = make([]Event, 0)
	return events
}

func (c *Cart) findItem(productID string) *LineItem {
	for _, item := range c.items {
		if item.ProductID == productID {
			return item
		}
	}
	return nil
}

func (c *Cart) recordEvent(event Event) {
	c.events = append(c.events, event)
}
