package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vergerducoin/verger-clients/pkg/types"
)

// ListStocks returns stock levels, optionally scoped to one location.
func (c *Client) ListStocks(ctx context.Context, locationID int64) ([]types.Stock, error) {
	q := url.Values{}
	if locationID > 0 {
		q.Set("location", strconv.FormatInt(locationID, 10))
	}
	var out types.Paginated[types.Stock]
	if err := c.do(ctx, "list_stocks", http.MethodGet, "/inventory/stocks/", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// ListLocations returns the stock locations.
func (c *Client) ListLocations(ctx context.Context) ([]types.StockLocation, error) {
	var out types.Paginated[types.StockLocation]
	if err := c.do(ctx, "list_locations", http.MethodGet, "/inventory/locations/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}
