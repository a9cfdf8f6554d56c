package types

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vergerducoin/verger-clients/pkg/enums"
)

// SubscriptionPlan is a recurring basket offering.
type SubscriptionPlan struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Frequency   string          `json:"frequency,omitempty"`
	IsActive    bool            `json:"is_active"`
}

// BasketItem is one product slot in a plan's current basket.
type BasketItem struct {
	Product     int64           `json:"product"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// PlanBasket describes the basket composed for the current cycle.
type PlanBasket struct {
	Plan  int64        `json:"plan"`
	Week  string       `json:"week,omitempty"`
	Items []BasketItem `json:"items"`
}

// Subscription is a customer's recurring basket enrollment.
type Subscription struct {
	ID           int64                    `json:"id"`
	Plan         int64                    `json:"plan"`
	PlanName     string                   `json:"plan_name,omitempty"`
	Status       enums.SubscriptionStatus `json:"status"`
	StartDate    *time.Time               `json:"start_date,omitempty"`
	NextDelivery *time.Time               `json:"next_delivery,omitempty"`
	CreatedAt    time.Time                `json:"created_at,omitempty"`
}

// SubscriptionInput creates a new enrollment.
type SubscriptionInput struct {
	Plan      int64      `json:"plan"`
	StartDate *time.Time `json:"start_date,omitempty"`
}

// Delivery is a scheduled basket drop for a subscription.
type Delivery struct {
	ID            int64      `json:"id"`
	Subscription  int64      `json:"subscription"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	Status        string     `json:"status"`
}
