package types

import "time"

// Customer mirrors the customer resource exposed by the commerce API.
type Customer struct {
	ID                int64      `json:"id"`
	InternalID        string     `json:"internal_id,omitempty"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	FullName          string     `json:"full_name,omitempty"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone,omitempty"`
	AddressLine1      string     `json:"address_line1,omitempty"`
	PostalCode        string     `json:"postal_code,omitempty"`
	City              string     `json:"city,omitempty"`
	IsActive          bool       `json:"is_active"`
	IsAnonymized      bool       `json:"is_anonymized"`
	MarketingConsent  bool       `json:"marketing_consent"`
	NewsletterConsent bool       `json:"newsletter_consent"`
	LastPurchaseDate  *time.Time `json:"last_purchase_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at,omitempty"`
}

// LoyaltyCard attaches a sale to a customer record and accrues points.
type LoyaltyCard struct {
	ID                int64  `json:"id"`
	Customer          int64  `json:"customer"`
	CustomerName      string `json:"customer_name,omitempty"`
	CardNumber        string `json:"card_number"`
	PointsBalance     int    `json:"points_balance"`
	TotalPointsEarned int    `json:"total_points_earned"`
	IsActive          bool   `json:"is_active"`
}

// RegistrationInput is the payload for creating a customer account.
type RegistrationInput struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	Phone             string `json:"phone,omitempty"`
	AddressLine1      string `json:"address_line1,omitempty"`
	PostalCode        string `json:"postal_code,omitempty"`
	City              string `json:"city,omitempty"`
	MarketingConsent  bool   `json:"marketing_consent"`
	NewsletterConsent bool   `json:"newsletter_consent"`
}

// CustomerPatch carries the fields a PATCH /customers/{id}/ may change.
// Nil pointers are omitted so untouched fields keep their server value.
type CustomerPatch struct {
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	AddressLine1      *string `json:"address_line1,omitempty"`
	PostalCode        *string `json:"postal_code,omitempty"`
	City              *string `json:"city,omitempty"`
	MarketingConsent  *bool   `json:"marketing_consent,omitempty"`
	NewsletterConsent *bool   `json:"newsletter_consent,omitempty"`
}
