package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	cartdomain "github.com/navbug/storefront-core/internal/app/cart/domain"
	"github.com/navbug/storefront-core/internal/app/order/contracts"
)

// OrderClient implements contracts.OrderService against the storefront
// REST API.
type OrderClient struct {
	client *Client
}

// NewOrderClient creates an order client on the shared Client.
func NewOrderClient(client *Client) *OrderClient {
	return &OrderClient{client: client}
}

var _ contracts.OrderService = (*OrderClient)(nil)

type shippingInfoDTO struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pincode"`
}

type orderLineDTO struct {
	ProductID string  `json:"_id"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type orderDTO struct {
	ID              string          `json:"_id"`
	Status          string          `json:"status"`
	ShippingInfo    shippingInfoDTO `json:"shippingInfo"`
	Items           []orderLineDTO  `json:"orderItems"`
	Subtotal        float64         `json:"subtotal"`
	ShippingCharges float64         `json:"shippingCharges"`
	Total           float64         `json:"total"`
	UserID          string          `json:"user"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type submitOrderRequest struct {
	ShippingInfo    shippingInfoDTO `json:"shippingInfo"`
	Items           []orderLineDTO  `json:"orderItems"`
	Subtotal        float64         `json:"subtotal"`
	ShippingCharges float64         `json:"shippingCharges"`
	Total           float64         `json:"total"`
	UserID          string          `json:"user"`
	IdempotencyKey  string          `json:"idempotencyKey"`
}

type submitOrderResponse struct {
	Order orderDTO `json:"order"`
}

// SubmitOrder places a new order and returns its id.
func (c *OrderClient) SubmitOrder(ctx context.Context, req contracts.SubmitRequest) (string, error) {
	lines := make([]orderLineDTO, len(req.Items))
	for i, item := range req.Items {
		lines[i] = orderLineDTO{
			ProductID: item.ProductID,
			Title:     item.Title,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	body := submitOrderRequest{
		ShippingInfo:    toShippingDTO(req.ShippingInfo),
		Items:           lines,
		Subtotal:        req.Subtotal,
		ShippingCharges: req.ShippingCharges,
		Total:           req.Total,
		UserID:          req.UserID,
		IdempotencyKey:  req.IdempotencyKey,
	}

	var resp submitOrderResponse
	if err := c.client.send(ctx, http.MethodPost, "/newOrder", body, &resp); err != nil {
		return "", err
	}
	return resp.Order.ID, nil
}

// GetOrder retrieves one order.
func (c *OrderClient) GetOrder(ctx context.Context, orderID string) (*contracts.Order, error) {
	var dto orderDTO
	if err := c.client.get(ctx, "/getOrder/"+url.PathEscape(orderID), nil, &dto); err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return dto.toContract(), nil
}

// ListOrders retrieves the caller's orders.
func (c *OrderClient) ListOrders(ctx context.Context) ([]*contracts.Order, error) {
	var dtos []orderDTO
	if err := c.client.get(ctx, "/getAllOrders", nil, &dtos); err != nil {
		return nil, err
	}

	orders := make([]*contracts.Order, len(dtos))
	for i := range dtos {
		orders[i] = dtos[i].toContract()
	}
	return orders, nil
}

// UpdateStatus moves an order to a new status.
func (c *OrderClient) UpdateStatus(ctx context.Context, orderID string, status contracts.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	return c.client.send(ctx, http.MethodPatch, "/processOrder/"+url.PathEscape(orderID), body, nil)
}

// CancelOrder deletes an order.
func (c *OrderClient) CancelOrder(ctx context.Context, orderID string) error {
	return c.client.send(ctx, http.MethodDelete, "/deleteOrder/"+url.PathEscape(orderID), nil, nil)
}

func toShippingDTO(info cartdomain.ShippingInfo) shippingInfoDTO {
	return shippingInfoDTO{
		Address: info.Address,
		City:    info.City,
		State:   info.State,
		Country: info.Country,
		PinCode: info.PinCode,
	}
}

func (d *orderDTO) toContract() *contracts.Order {
	lines := make([]contracts.OrderLine, len(d.Items))
	for i, item := range d.Items {
		lines[i] = contracts.OrderLine{
			ProductID: item.ProductID,
			Title:     item.Title,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	return &contracts.Order{
		ID:     d.ID,
		Status: contracts.OrderStatus(d.Status),
		ShippingInfo: cartdomain.ShippingInfo{
			Address: d.ShippingInfo.Address,
			City:    d.ShippingInfo.City,
			State:   d.ShippingInfo.State,
			Country: d.ShippingInfo.Country,
			PinCode: d.ShippingInfo.PinCode,
		},
		Items:           lines,
		Subtotal:        d.Subtotal,
		ShippingCharges: d.ShippingCharges,
		Total:           d.Total,
		UserID:          d.UserID,
		CreatedAt:       d.CreatedAt,
	}
}
