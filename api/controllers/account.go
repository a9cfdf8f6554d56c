package controllers

import (
	"context"
	"net/http"

	"github.com/vergerducoin/verger-clients/api/responses"
	"github.com/vergerducoin/verger-clients/api/validators"
	"github.com/vergerducoin/verger-clients/internal/session"
	pkgerrors "github.com/vergerducoin/verger-clients/pkg/errors"
	"github.com/vergerducoin/verger-clients/pkg/logger"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

// AccountGateway is the slice of the commerce gateway the account views need.
type AccountGateway interface {
	GetMe(ctx context.Context) (*types.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, patch types.CustomerPatch) (*types.Customer, error)
	ListMyOrders(ctx context.Context) ([]types.Sale, error)
	GetSale(ctx context.Context, id int64) (*types.Sale, error)
}

func Me(gw AccountGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, err := gw.GetMe(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, customer)
	}
}

type updateAccountRequest struct {
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone             *string `json:"phone,omitempty"`
	AddressLine1      *string `json:"address_line1,omitempty"`
	PostalCode        *string `json:"postal_code,omitempty"`
	City              *string `json:"city,omitempty"`
	MarketingConsent  *bool   `json:"marketing_consent,omitempty"`
	NewsletterConsent *bool   `json:"newsletter_consent,omitempty"`
}

// UpdateAccount patches the customer record bound to the session and
// folds the name and email changes back into the cached profile.
func UpdateAccount(gw AccountGateway, sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, ok := sess.Profile()
		if !ok || profile.CustomerID <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "no customer record for this session"))
			return
		}

		var payload updateAccountRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customer, err := gw.UpdateCustomer(r.Context(), profile.CustomerID, types.CustomerPatch{
			FirstName:         payload.FirstName,
			LastName:          payload.LastName,
			Email:             payload.Email,
			Phone:             payload.Phone,
			AddressLine1:      payload.AddressLine1,
			PostalCode:        payload.PostalCode,
			City:              payload.City,
			MarketingConsent:  payload.MarketingConsent,
			NewsletterConsent: payload.NewsletterConsent,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess.UpdateProfile(r.Context(), types.ProfilePatch{
			Email:     payload.Email,
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
		})

		responses.WriteSuccess(w, customer)
	}
}

func MyOrders(gw AccountGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := gw.ListMyOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

func OrderDetail(gw AccountGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "saleID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sale, err := gw.GetSale(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, sale)
	}
}
