package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vergerducoin/verger-clients/pkg/types"
)

// ProductFilter narrows ListProducts. Zero values apply no filter.
type ProductFilter struct {
	Category int64
	Search   string
}

func (f ProductFilter) query() url.Values {
	q := url.Values{}
	if f.Category > 0 {
		q.Set("category", strconv.FormatInt(f.Category, 10))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// ListProducts returns the catalog page matching the filter.
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) ([]types.Product, error) {
	var out types.Paginated[types.Product]
	if err := c.do(ctx, "list_products", http.MethodGet, "/products/", filter.query(), nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*types.Product, error) {
	var out types.Product
	if err := c.do(ctx, "get_product", http.MethodGet, fmt.Sprintf("/products/%d/", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInSeasonProducts returns the seasonal subset of the catalog.
func (c *Client) ListInSeasonProducts(ctx context.Context) ([]types.Product, error) {
	var out types.Paginated[types.Product]
	if err := c.do(ctx, "list_in_season_products", http.MethodGet, "/products/in_season/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// ListCategories returns all product categories.
func (c *Client) ListCategories(ctx context.Context) ([]types.Category, error) {
	var out types.Paginated[types.Category]
	if err := c.do(ctx, "list_categories", http.MethodGet, "/products/categories/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}
