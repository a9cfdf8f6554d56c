package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vergerducoin/verger-clients/pkg/types"
)

// ListPlans returns the active subscription plans.
func (c *Client) ListPlans(ctx context.Context) ([]types.SubscriptionPlan, error) {
	var out types.Paginated[types.SubscriptionPlan]
	if err := c.do(ctx, "list_plans", http.MethodGet, "/subscriptions/plans/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// GetPlan fetches a single plan by id.
func (c *Client) GetPlan(ctx context.Context, id int64) (*types.SubscriptionPlan, error) {
	var out types.SubscriptionPlan
	if err := c.do(ctx, "get_plan", http.MethodGet, fmt.Sprintf("/subscriptions/plans/%d/", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPlanCurrentBasket returns the basket composed for the plan's current
// cycle.
func (c *Client) GetPlanCurrentBasket(ctx context.Context, planID int64) (*types.PlanBasket, error) {
	var out types.PlanBasket
	if err := c.do(ctx, "get_plan_current_basket", http.MethodGet, fmt.Sprintf("/subscriptions/plans/%d/current_basket/", planID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMySubscriptions returns the authenticated customer's enrollments.
func (c *Client) ListMySubscriptions(ctx context.Context) ([]types.Subscription, error) {
	var out types.Paginated[types.Subscription]
	if err := c.do(ctx, "list_my_subscriptions", http.MethodGet, "/subscriptions/my_subscriptions/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// CreateSubscription enrolls the authenticated customer in a plan.
func (c *Client) CreateSubscription(ctx context.Context, input types.SubscriptionInput) (*types.Subscription, error) {
	var out types.Subscription
	if err := c.do(ctx, "create_subscription", http.MethodPost, "/subscriptions/", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSubscription fetches a single enrollment by id.
func (c *Client) GetSubscription(ctx context.Context, id int64) (*types.Subscription, error) {
	var out types.Subscription
	if err := c.do(ctx, "get_subscription", http.MethodGet, fmt.Sprintf("/subscriptions/%d/", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PauseSubscription suspends deliveries for an enrollment.
func (c *Client) PauseSubscription(ctx context.Context, id int64) (*types.Subscription, error) {
	var out types.Subscription
	if err := c.do(ctx, "pause_subscription", http.MethodPost, fmt.Sprintf("/subscriptions/%d/pause/", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResumeSubscription restarts deliveries for a paused enrollment.
func (c *Client) ResumeSubscription(ctx context.Context, id int64) (*types.Subscription, error) {
	var out types.Subscription
	if err := c.do(ctx, "resume_subscription", http.MethodPost, fmt.Sprintf("/subscriptions/%d/resume/", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelSubscription ends an enrollment. The reason is optional.
func (c *Client) CancelSubscription(ctx context.Context, id int64, reason string) (*types.Subscription, error) {
	var body map[string]string
	if reason != "" {
		body = map[string]string{"reason": reason}
	}
	var out types.Subscription
	if err := c.do(ctx, "cancel_subscription", http.MethodPost, fmt.Sprintf("/subscriptions/%d/cancel/", id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUpcomingDeliveries returns pending basket drops for the
// authenticated customer.
func (c *Client) ListUpcomingDeliveries(ctx context.Context) ([]types.Delivery, error) {
	q := url.Values{}
	q.Set("status", "PENDING")
	var out types.Paginated[types.Delivery]
	if err := c.do(ctx, "list_upcoming_deliveries", http.MethodGet, "/subscriptions/deliveries/", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}
