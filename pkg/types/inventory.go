package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock is a per-location quantity snapshot for one product.
type Stock struct {
	ID                int64           `json:"id"`
	Product           int64           `json:"product"`
	ProductName       string          `json:"product_name,omitempty"`
	Location          int64           `json:"location"`
	LocationName      string          `json:"location_name,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	ReservedQuantity  decimal.Decimal `json:"reserved_quantity"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	IsLowStock        bool            `json:"is_low_stock"`
	LastUpdated       *time.Time      `json:"last_updated,omitempty"`
}

// StockLocation is a physical point of sale or storage.
type StockLocation struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
