package controllers

import (
	"context"
	"net/http"

	"github.com/vergerducoin/verger-clients/api/responses"
	"github.com/vergerducoin/verger-clients/api/validators"
	"github.com/vergerducoin/verger-clients/pkg/logger"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

// InventoryGateway is the slice of the commerce gateway the stock views need.
type InventoryGateway interface {
	ListStocks(ctx context.Context, locationID int64) ([]types.Stock, error)
	ListLocations(ctx context.Context) ([]types.StockLocation, error)
}

func ListStocks(gw InventoryGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		location, err := validators.ParseQueryInt(r, "location", 0, 0, 1<<31)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		stocks, err := gw.ListStocks(r.Context(), int64(location))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stocks)
	}
}

func ListLocations(gw InventoryGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locations, err := gw.ListLocations(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, locations)
	}
}
