package controllers

import (
	"context"
	"net/http"

	"github.com/vergerducoin/verger-clients/api/responses"
	"github.com/vergerducoin/verger-clients/api/validators"
	"github.com/vergerducoin/verger-clients/pkg/logger"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

// CustomerGateway is the slice of the commerce gateway the POS customer
// lookup needs.
type CustomerGateway interface {
	SearchCustomerByCard(ctx context.Context, cardNumber string) (*types.Customer, error)
}

type cardSearchRequest struct {
	CardNumber string `json:"card_number" validate:"required"`
}

// SearchCustomerByCard resolves a scanned loyalty card so the sale can
// be attached to the customer.
func SearchCustomerByCard(gw CustomerGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cardSearchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customer, err := gw.SearchCustomerByCard(r.Context(), validators.SanitizeString(payload.CardNumber, 64))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, customer)
	}
}
