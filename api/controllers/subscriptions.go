package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/vergerducoin/verger-clients/api/responses"
	"github.com/vergerducoin/verger-clients/api/validators"
	"github.com/vergerducoin/verger-clients/pkg/logger"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

// SubscriptionGateway is the slice of the commerce gateway the
// subscription views need.
type SubscriptionGateway interface {
	ListPlans(ctx context.Context) ([]types.SubscriptionPlan, error)
	GetPlan(ctx context.Context, id int64) (*types.SubscriptionPlan, error)
	GetPlanCurrentBasket(ctx context.Context, planID int64) (*types.PlanBasket, error)
	ListMySubscriptions(ctx context.Context) ([]types.Subscription, error)
	CreateSubscription(ctx context.Context, input types.SubscriptionInput) (*types.Subscription, error)
	GetSubscription(ctx context.Context, id int64) (*types.Subscription, error)
	PauseSubscription(ctx context.Context, id int64) (*types.Subscription, error)
	ResumeSubscription(ctx context.Context, id int64) (*types.Subscription, error)
	CancelSubscription(ctx context.Context, id int64, reason string) (*types.Subscription, error)
	ListUpcomingDeliveries(ctx context.Context) ([]types.Delivery, error)
}

func ListPlans(gw SubscriptionGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plans, err := gw.ListPlans(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, plans)
	}
}

func PlanDetail(gw SubscriptionGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "planID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		plan, err := gw.GetPlan(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, plan)
	}
}

func PlanCurrentBasket(gw SubscriptionGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "planID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		basket, err := gw.GetPlanCurrentBasket(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, basket)
	}
}

func MySubscriptions(gw SubscriptionGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := gw.ListMySubscriptions(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, subs)
	}
}

type createSubscriptionRequest struct {
	PlanID    int64      `json:"plan_id" validate:"required,min=1"`
	StartDate *time.Time `json:"start_date,omitempty"`
}

func CreateSubscription(gw SubscriptionGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createSubscriptionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sub, err := gw.CreateSubscription(r.Context(), types.SubscriptionInput{
			Plan:      payload.PlanID,
			StartDate: payload.StartDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, sub)
	}
}

func SubscriptionDetail(gw SubscriptionGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "subscriptionID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sub, err := gw.GetSubscription(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, sub)
	}
}

func PauseSubscription(gw SubscriptionGateway, logg *logger.Logger) http.HandlerFunc {
	return subscriptionAction(logg, "subscriptionID", gw.PauseSubscription)
}

func ResumeSubscription(gw SubscriptionGateway, logg *logger.Logger) http.HandlerFunc {
	return subscriptionAction(logg, "subscriptionID", gw.ResumeSubscription)
}

type cancelSubscriptionRequest struct {
	Reason string `json:"reason,omitempty"`
}

func CancelSubscription(gw SubscriptionGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "subscriptionID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cancelSubscriptionRequest
		if r.ContentLength > 0 {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		sub, err := gw.CancelSubscription(r.Context(), id, validators.SanitizeString(payload.Reason, 500))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, sub)
	}
}

func UpcomingDeliveries(gw SubscriptionGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deliveries, err := gw.ListUpcomingDeliveries(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, deliveries)
	}
}

func subscriptionAction(logg *logger.Logger, param string, action func(context.Context, int64) (*types.Subscription, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, param)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sub, err := action(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, sub)
	}
}
