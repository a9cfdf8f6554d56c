package types

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vergerducoin/verger-clients/pkg/enums"
)

// SaleLine is one (product, quantity) pairing within a recorded sale.
type SaleLine struct {
	ID              int64           `json:"id,omitempty"`
	Product         int64           `json:"product"`
	ProductName     string          `json:"product_name,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	VATRate         decimal.Decimal `json:"vat_rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	LineTotal       decimal.Decimal `json:"line_total,omitempty"`
}

// Sale mirrors the sale record the backend returns after checkout.
// The backend computes subtotal, VAT and total; the client never
// overrides them.
type Sale struct {
	ID             int64               `json:"id"`
	SaleNumber     string              `json:"sale_number"`
	Channel        enums.Channel       `json:"channel"`
	Location       int64               `json:"location"`
	Customer       *int64              `json:"customer,omitempty"`
	CustomerName   string              `json:"customer_name,omitempty"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	VATAmount      decimal.Decimal     `json:"vat_amount"`
	DiscountAmount decimal.Decimal     `json:"discount_amount"`
	Total          decimal.Decimal     `json:"total"`
	PaymentMethod  enums.PaymentMethod `json:"payment_method"`
	IsPaid         bool                `json:"is_paid"`
	Status         enums.SaleStatus    `json:"status"`
	Lines          []SaleLine          `json:"lines"`
	CreatedAt      time.Time           `json:"created_at,omitempty"`
	Synced         bool                `json:"synced"`
}

// SaleLineInput snapshots a cart line for POST /sales/.
type SaleLineInput struct {
	Product   int64           `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	VATRate   decimal.Decimal `json:"vat_rate"`
}

// SaleInput is the checkout submission payload.
type SaleInput struct {
	Channel          enums.Channel       `json:"channel"`
	Location         int64               `json:"location"`
	Customer         *int64              `json:"customer,omitempty"`
	PaymentMethod    enums.PaymentMethod `json:"payment_method"`
	Lines            []SaleLineInput     `json:"lines"`
	OfflineCreatedAt *time.Time          `json:"offline_created_at,omitempty"`
}
