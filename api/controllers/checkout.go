package controllers

import (
	"context"
	"net/http"

	"github.com/vergerducoin/verger-clients/api/responses"
	"github.com/vergerducoin/verger-clients/api/validators"
	"github.com/vergerducoin/verger-clients/internal/cart"
	"github.com/vergerducoin/verger-clients/internal/session"
	"github.com/vergerducoin/verger-clients/pkg/enums"
	pkgerrors "github.com/vergerducoin/verger-clients/pkg/errors"
	"github.com/vergerducoin/verger-clients/pkg/logger"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

// CheckoutGateway is the slice of the commerce gateway checkout needs.
type CheckoutGateway interface {
	CreateSale(ctx context.Context, input types.SaleInput) (*types.Sale, error)
}

// CheckoutConfig pins the channel and location a deployment sells from.
type CheckoutConfig struct {
	Channel  enums.Channel
	Location int64
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
	CustomerID    int64  `json:"customer_id,omitempty" validate:"omitempty,min=1"`
}

// Checkout snapshots the cart into a sale submission. The backend owns
// all totals; on success the cart is cleared, on failure it is kept so
// the operator can retry.
func Checkout(c *cart.Cart, sess *session.Session, gw CheckoutGateway, opts CheckoutConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if c.IsEmpty() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty"))
			return
		}

		method, err := enums.ParsePaymentMethod(payload.PaymentMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method"))
			return
		}

		var customer *int64
		if payload.CustomerID > 0 {
			customer = &payload.CustomerID
		} else if profile, ok := sess.Profile(); ok && profile.CustomerID > 0 {
			id := profile.CustomerID
			customer = &id
		}

		sale, err := gw.CreateSale(r.Context(), types.SaleInput{
			Channel:       opts.Channel,
			Location:      opts.Location,
			Customer:      customer,
			PaymentMethod: method,
			Lines:         c.SaleLines(),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.Clear(r.Context())
		responses.WriteSuccessStatus(w, http.StatusCreated, sale)
	}
}
