package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vergerducoin/verger-clients/pkg/types"
)

// CreateSale submits a checkout. The backend owns all totals; the sale
// comes back with its generated number and computed amounts.
func (c *Client) CreateSale(ctx context.Context, input types.SaleInput) (*types.Sale, error) {
	var out types.Sale
	if err := c.do(ctx, "create_sale", http.MethodPost, "/sales/", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMyOrders returns the authenticated customer's order history.
func (c *Client) ListMyOrders(ctx context.Context) ([]types.Sale, error) {
	var out types.Paginated[types.Sale]
	if err := c.do(ctx, "list_my_orders", http.MethodGet, "/sales/my_orders/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// GetSale fetches a single sale by id.
func (c *Client) GetSale(ctx context.Context, id int64) (*types.Sale, error) {
	var out types.Sale
	if err := c.do(ctx, "get_sale", http.MethodGet, fmt.Sprintf("/sales/%d/", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
