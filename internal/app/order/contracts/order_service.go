package contracts

import (
	"context"
	"time"

	cartdomain "github.com/navbug/storefront-core/internal/app/cart/domain"
)

// OrderStatus is the remote order lifecycle as the API reports it.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
)

// OrderLine is one purchased line item as submitted to the order
// service. Price is the unit price snapshot the customer saw.
type OrderLine struct {
	ProductID string
	Title     string
	Image     string
	Price     float64
	Quantity  int
}

// SubmitRequest is a new order: the cart contents, the derived totals
// the customer was shown, and who is buying. The idempotency key is
// client-generated so a resubmitted request cannot create a second
// order.
type SubmitRequest struct {
	ShippingInfo    cartdomain.ShippingInfo
	Items           []OrderLine
	Subtotal        float64
	ShippingCharges float64
	Total           float64
	UserID          string
	IdempotencyKey  string
}

// Order is an order as the remote service reports it.
type Order struct {
	ID              string
	Status          OrderStatus
	ShippingInfo    cartdomain.ShippingInfo
	Items           []OrderLine
	Subtotal        float64
	ShippingCharges float64
	Total           float64
	UserID          string
	CreatedAt       time.Time
}

// OrderService is the remote order API. Inventory enforcement and
// pricing authority live there; the SDK submits what the customer saw
// and reads back whatever the service decided.
type OrderService interface {
	// SubmitOrder places a new order and returns its id.
	SubmitOrder(ctx context.Context, req SubmitRequest) (string, error)

	// GetOrder retrieves one order.
	GetOrder(ctx context.Context, orderID string) (*Order, error)

	// ListOrders retrieves the caller's orders, newest first.
	ListOrders(ctx context.Context) ([]*Order, error)

	// UpdateStatus moves an order to a new status (admin operation).
	UpdateStatus(ctx context.Context, orderID string, status OrderStatus) error

	// CancelOrder deletes an order (admin operation).
	CancelOrder(ctx context.Context, orderID string) error
}
