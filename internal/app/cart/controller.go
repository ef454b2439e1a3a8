package cart

import (
	"go.uber.org/zap"

	"github.com/navbug/storefront-core/internal/app/cart/domain"
)

// Controller is the operation surface the UI layer calls. All
// operations are pure in-memory mutations; the only failures are
// validation rejections, returned as the domain sentinels with state
// unchanged.
type Controller struct {
	store  *Store
	logger *zap.Logger
}

// NewController creates a controller over the given store.
func NewController(store *Store, logger *zap.Logger) *Controller {
	return &Controller{store: store, logger: logger}
}

// AddItem puts a product in the cart with quantity 1. Returns
// domain.ErrItemAlreadyInCart when the product is already there; the
// caller may surface that as feedback, the cart is unchanged.
func (c *Controller) AddItem(p domain.ProductSnapshot) error {
	err := c.store.mutate(func(cart *domain.Cart) error {
		return cart.AddItem(p)
	})
	if err != nil {
		c.logger.Debug("add to cart rejected", zap.String("product_id", p.ID), zap.Error(err))
		return err
	}
	c.logger.Info("item added to cart", zap.String("product_id", p.ID), zap.String("title", p.Title))
	return nil
}

// RemoveItem takes a product out of the cart. Removing an id that is
// not in the cart is a no-op.
func (c *Controller) RemoveItem(productID string) error {
	err := c.store.mutate(func(cart *domain.Cart) error {
		return cart.RemoveItem(productID)
	})
	if err == nil {
		c.logger.Info("item removed from cart", zap.String("product_id", productID))
	}
	return err
}

// ChangeQuantity sets a line item's quantity. Out-of-range values are
// rejected with domain.ErrQuantityOutOfRange rather than clamped.
func (c *Controller) ChangeQuantity(productID string, newQuantity int) error {
	err := c.store.mutate(func(cart *domain.Cart) error {
		return cart.ChangeQuantity(productID, newQuantity)
	})
	if err != nil {
		c.logger.Debug("quantity change rejected",
			zap.String("product_id", productID),
			zap.Int("requested", newQuantity),
			zap.Error(err))
		return err
	}
	c.logger.Info("quantity changed", zap.String("product_id", productID), zap.Int("quantity", newQuantity))
	return nil
}

// SaveShippingInfo replaces the shipping draft wholesale.
func (c *Controller) SaveShippingInfo(info domain.ShippingInfo) error {
	err := c.store.mutate(func(cart *domain.Cart) error {
		return cart.SaveShippingInfo(info)
	})
	if err != nil {
		c.logger.Debug("shipping info rejected", zap.String("country", info.Country), zap.Error(err))
		return err
	}
	c.logger.Info("shipping info saved", zap.String("city", info.City), zap.String("country", info.Country))
	return nil
}

// ResetCart clears the cart back to its initial state. Call only after
// the order service confirmed the order was accepted.
func (c *Controller) ResetCart() {
	_ = c.store.mutate(func(cart *domain.Cart) error {
		cart.Reset()
		return nil
	})
	c.logger.Info("cart reset")
}

// Snapshot returns the current cart state.
func (c *Controller) Snapshot() Snapshot {
	return c.store.Snapshot()
}
