package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// UserClient covers the customer accounts the dashboard manages and
// the wishlist a signed-in customer edits. Listing and deleting
// require an admin bearer token; the API decides who is an admin.
type UserClient struct {
	client *Client
}

// NewUserClient creates a user client on the shared Client.
func NewUserClient(client *Client) *UserClient {
	return &UserClient{client: client}
}

// User is a customer account as the remote service reports it.
type User struct {
	ID        string
	Name      string
	Email     string
	Wishlist  []string
	CreatedAt time.Time
}

type userDTO struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Wishlist  []string  `json:"wishlist"`
	CreatedAt time.Time `json:"createdAt"`
}

type listUsersResponse struct {
	Users []userDTO `json:"users"`
}

type getUserResponse struct {
	User userDTO `json:"user"`
}

type wishlistResponse struct {
	Wishlist []string `json:"wishlist"`
}

// ListUsers retrieves every customer account for the dashboard tables.
func (c *UserClient) ListUsers(ctx context.Context) ([]*User, error) {
	var resp listUsersResponse
	if err := c.client.get(ctx, "/getAllUsers", nil, &resp); err != nil {
		return nil, err
	}

	users := make([]*User, len(resp.Users))
	for i := range resp.Users {
		users[i] = resp.Users[i].toUser()
	}
	return users, nil
}

// GetUser retrieves one customer account.
func (c *UserClient) GetUser(ctx context.Context, userID string) (*User, error) {
	var resp getUserResponse
	if err := c.client.get(ctx, "/getUser/"+url.PathEscape(userID), nil, &resp); err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	return resp.User.toUser(), nil
}

// DeleteUser removes a customer account.
func (c *UserClient) DeleteUser(ctx context.Context, userID string) error {
	return c.client.send(ctx, http.MethodDelete, "/deleteUser/"+url.PathEscape(userID), nil, nil)
}

// UpdateWishlist adds the product to the user's wishlist, or removes
// it when remove is true. Returns the wishlist after the change.
func (c *UserClient) UpdateWishlist(ctx context.Context, userID, productID string, remove bool) ([]string, error) {
	body := map[string]any{
		"productId": productID,
		"notExist":  !remove,
	}

	var resp wishlistResponse
	if err := c.client.send(ctx, http.MethodPatch, "/updateWishlist/"+url.PathEscape(userID), body, &resp); err != nil {
		return nil, err
	}
	return resp.Wishlist, nil
}

func (d *userDTO) toUser() *User {
	return &User{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Wishlist:  d.Wishlist,
		CreatedAt: d.CreatedAt,
	}
}
