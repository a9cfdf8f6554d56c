package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vergerducoin/verger-clients/pkg/types"
)

// RegisterCustomer creates a customer account.
func (c *Client) RegisterCustomer(ctx context.Context, input types.RegistrationInput) (*types.Customer, error) {
	var out types.Customer
	if err := c.do(ctx, "register_customer", http.MethodPost, "/customers/", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMe returns the customer record bound to the authenticated user.
func (c *Client) GetMe(ctx context.Context) (*types.Customer, error) {
	var out types.Customer
	if err := c.do(ctx, "get_me", http.MethodGet, "/customers/me/", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCustomer applies a partial update to a customer record.
func (c *Client) UpdateCustomer(ctx context.Context, id int64, patch types.CustomerPatch) (*types.Customer, error) {
	var out types.Customer
	if err := c.do(ctx, "update_customer", http.MethodPatch, fmt.Sprintf("/customers/%d/", id), nil, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchCustomerByCard resolves a loyalty card number to its customer.
func (c *Client) SearchCustomerByCard(ctx context.Context, cardNumber string) (*types.Customer, error) {
	body := map[string]string{"card_number": cardNumber}
	var out types.Customer
	if err := c.do(ctx, "search_customer_by_card", http.MethodPost, "/customers/search_by_card/", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
