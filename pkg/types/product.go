package types

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vergerducoin/verger-clients/pkg/enums"
)

// Product mirrors the catalog resource served by the commerce API.
// Pricing fields are read-only on the client; the backend owns them.
type Product struct {
	ID           int64             `json:"id"`
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	Category     int64             `json:"category"`
	CategoryName string            `json:"category_name,omitempty"`
	Description  string            `json:"description,omitempty"`
	BasePrice    decimal.Decimal   `json:"base_price"`
	Unit         enums.ProductUnit `json:"unit"`
	VATRate      decimal.Decimal   `json:"vat_rate"`
	IsActive     bool              `json:"is_active"`
	IsSeasonal   bool              `json:"is_seasonal"`
	InSeason     bool              `json:"in_season"`
	CreatedAt    time.Time         `json:"created_at,omitempty"`
}

// Category is a product grouping used for catalog filters.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}
