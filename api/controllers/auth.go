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

// AuthGateway is the slice of the commerce gateway the auth views need.
type AuthGateway interface {
	Authenticate(ctx context.Context, username, password string) (*types.TokenResponse, error)
	GetMe(ctx context.Context) (*types.Customer, error)
	RegisterCustomer(ctx context.Context, input types.RegistrationInput) (*types.Customer, error)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Profile types.UserProfile `json:"profile"`
}

// Login exchanges credentials for a token and opens the session. The
// profile is built from the token claims and enriched with the customer
// record when one exists; operators have none and that is not an error.
func Login(gw AuthGateway, sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := gw.Authenticate(r.Context(), payload.Username, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile := session.ProfileFromToken(token.Access, payload.Username)
		sess.Login(r.Context(), profile, token.Access)

		if me, err := gw.GetMe(r.Context()); err == nil && me != nil {
			profile.CustomerID = me.ID
			if profile.Email == "" {
				profile.Email = me.Email
			}
			profile.FirstName = me.FirstName
			profile.LastName = me.LastName
			sess.Login(r.Context(), profile, token.Access)
		}

		responses.WriteSuccess(w, loginResponse{Profile: profile})
	}
}

// Logout closes the local session. The backend keeps no session state.
func Logout(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess.Logout(r.Context())
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

type registerRequest struct {
	FirstName         string `json:"first_name" validate:"required"`
	LastName          string `json:"last_name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	PasswordConfirm   string `json:"password_confirm" validate:"required"`
	Phone             string `json:"phone,omitempty"`
	AddressLine1      string `json:"address_line1,omitempty"`
	PostalCode        string `json:"postal_code,omitempty"`
	City              string `json:"city,omitempty"`
	MarketingConsent  bool   `json:"marketing_consent"`
	NewsletterConsent bool   `json:"newsletter_consent"`
}

// Register creates a customer account. The password confirmation is
// checked locally before anything reaches the backend.
func Register(gw AuthGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if payload.Password != payload.PasswordConfirm {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "passwords do not match").
					WithDetails(map[string]string{"password_confirm": "must match password"}))
			return
		}

		customer, err := gw.RegisterCustomer(r.Context(), types.RegistrationInput{
			FirstName:         validators.SanitizeString(payload.FirstName, 120),
			LastName:          validators.SanitizeString(payload.LastName, 120),
			Email:             validators.SanitizeString(payload.Email, 254),
			Password:          payload.Password,
			Phone:             validators.SanitizeString(payload.Phone, 30),
			AddressLine1:      validators.SanitizeString(payload.AddressLine1, 255),
			PostalCode:        validators.SanitizeString(payload.PostalCode, 12),
			City:              validators.SanitizeString(payload.City, 120),
			MarketingConsent:  payload.MarketingConsent,
			NewsletterConsent: payload.NewsletterConsent,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, customer)
	}
}

// SessionInfo reports the current session for the view shell.
func SessionInfo(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := map[string]any{"authenticated": sess.IsAuthenticated()}
		if profile, ok := sess.Profile(); ok {
			info["profile"] = profile
			info["is_staff"] = sess.IsStaff()
			if exp, ok := sess.Expiry(); ok {
				info["token_expires_at"] = exp
			}
		}
		responses.WriteSuccess(w, info)
	}
}
