package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navbug/storefront-core/internal/app/cart"
	"github.com/navbug/storefront-core/internal/app/order/contracts"
)

var (
	ErrEmptyCart           = errors.New("cannot place an order with an empty cart")
	ErrMissingShippingInfo = errors.New("shipping info must be saved before checkout")
)

// Checkout submits the cart as a new order. Payment happens upstream
// with the external provider; this helper runs after payment succeeded
// and enforces the sequencing the cart relies on: the cart is reset
// only once the order service confirmed acceptance. A failed submit
// leaves the cart intact so the customer can try again.
type Checkout struct {
	cart   *cart.Controller
	orders contracts.OrderService
	logger *zap.Logger
}

// NewCheckout creates a checkout helper.
func NewCheckout(cartCtl *cart.Controller, orders contracts.OrderService, logger *zap.Logger) *Checkout {
	return &Checkout{
		cart:   cartCtl,
		orders: orders,
		logger: logger,
	}
}

// PlaceOrder snapshots the cart, submits it for the given user and
// resets the cart on acceptance. Returns the new order id.
func (c *Checkout) PlaceOrder(ctx context.Context, userID string) (string, error) {
	snap := c.cart.Snapshot()
	if len(snap.Items) == 0 {
		return "", ErrEmptyCart
	}
	if snap.ShippingInfo.Country == "" {
		return "", ErrMissingShippingInfo
	}

	lines := make([]contracts.OrderLine, len(snap.Items))
	for i, item := range snap.Items {
		lines[i] = contracts.OrderLine{
			ProductID: item.ProductID,
			Title:     item.Title,
			Image:     item.Image,
			Price:     item.UnitPrice.Float64(),
			Quantity:  item.Quantity,
		}
	}

	req := contracts.SubmitRequest{
		ShippingInfo:    snap.ShippingInfo,
		Items:           lines,
		Subtotal:        snap.Subtotal.Float64(),
		ShippingCharges: snap.ShippingCharges.Float64(),
		Total:           snap.Total.Float64(),
		UserID:          userID,
		IdempotencyKey:  uuid.New().String(),
	}

	orderID, err := c.orders.SubmitOrder(ctx, req)
	if err != nil {
		c.logger.Error("order submission failed", zap.String("user_id", userID), zap.Error(err))
		return "", fmt.Errorf("submit order: %w", err)
	}

	// Accepted; only now may the cart be cleared.
	c.cart.ResetCart()

	c.logger.Info("order placed",
		zap.String("order_id", orderID),
		zap.String("user_id", userID),
		zap.Int("lines", len(lines)))
	return orderID, nil
}
