package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vergerducoin/verger-clients/internal/session"
	"github.com/vergerducoin/verger-clients/internal/state"
	"github.com/vergerducoin/verger-clients/pkg/config"
	"github.com/vergerducoin/verger-clients/pkg/enums"
	pkgerrors "github.com/vergerducoin/verger-clients/pkg/errors"
	"github.com/vergerducoin/verger-clients/pkg/logger"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{AppName: "gateway-test", Level: zerolog.ErrorLevel, Output: io.Discard})
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess, err := session.New(context.Background(), state.NewMemoryStore(), nil)
	require.NoError(t, err)

	cfg := config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}
	client, err := NewClient(context.Background(), cfg, sess, testLogger(), nil)
	require.NoError(t, err)
	return client, sess
}

func TestAuthenticate(t *testing.T) {
	var gotBody map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/token/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"access": "jwt-access", "refresh": "jwt-refresh"})
	}))

	resp, err := client.Authenticate(context.Background(), "marie", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-access", resp.Access)
	assert.Equal(t, map[string]string{"username": "marie", "password": "secret"}, gotBody)
}

func TestAuthenticateBadCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "No active account found"})
	}))

	_, err := client.Authenticate(context.Background(), "marie", "wrong")
	require.Error(t, err)
	domainErr := pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, domainErr.Code())
}

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(types.Customer{ID: 1})
	}))

	sess.Login(context.Background(), types.UserProfile{ID: 1}, "token-xyz")

	_, err := client.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-xyz", gotAuth)
}

func TestUnauthorizedInvalidatesSession(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	sess.Login(context.Background(), types.UserProfile{ID: 1}, "stale-token")
	require.True(t, sess.IsAuthenticated())

	_, err := client.ListMyOrders(context.Background())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())
	assert.False(t, sess.IsAuthenticated())
}

func TestNotFoundMapsCode(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Not found."})
	}))

	_, err := client.GetProduct(context.Background(), 99)
	require.Error(t, err)
	domainErr := pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeNotFound, domainErr.Code())
	assert.NotNil(t, domainErr.Details())
}

func TestServerErrorMapsDependency(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.ListProducts(context.Background(), ProductFilter{})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeDependency, pkgerrors.As(err).Code())
}

func TestTransportFailure(t *testing.T) {
	sess, err := session.New(context.Background(), state.NewMemoryStore(), nil)
	require.NoError(t, err)

	cfg := config.APIConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}
	client, err := NewClient(context.Background(), cfg, sess, testLogger(), nil)
	require.NoError(t, err)

	_, err = client.ListCategories(context.Background())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeDependency, pkgerrors.As(err).Code())
}

func TestListProductsEnvelopeAndFilter(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("category"))
		json.NewEncoder(w).Encode(map[string]any{
			"count":    2,
			"next":     nil,
			"previous": nil,
			"results": []map[string]any{
				{"id": 1, "name": "Pommes Gala", "base_price": "2.50", "vat_rate": "5.50", "unit": "KG"},
				{"id": 2, "name": "Poires", "base_price": "3.10", "vat_rate": "5.50", "unit": "KG"},
			},
		})
	}))

	products, err := client.ListProducts(context.Background(), ProductFilter{Category: 3})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Pommes Gala", products[0].Name)
	assert.True(t, products[0].BasePrice.Equal(decimal.RequireFromString("2.50")))
}

func TestListCategoriesBareArray(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "name": "Fruits"},
			{"id": 2, "name": "Légumes"},
		})
	}))

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Légumes", categories[1].Name)
}

func TestCreateSale(t *testing.T) {
	var got types.SaleInput
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sales/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{
			"id":          41,
			"sale_number": "V-2026-000041",
			"channel":     "KIOSK",
			"total":       "18.33",
			"status":      "COMPLETED",
		})
	}))
	sess.Login(context.Background(), types.UserProfile{ID: 1, IsStaff: true}, "tok")

	input := types.SaleInput{
		Channel:       enums.ChannelKiosk,
		Location:      1,
		PaymentMethod: enums.PaymentMethodCard,
		Lines: []types.SaleLineInput{
			{Product: 7, Quantity: 3, UnitPrice: decimal.RequireFromString("2.00"), VATRate: decimal.RequireFromString("5.50")},
		},
	}
	sale, err := client.CreateSale(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "V-2026-000041", sale.SaleNumber)
	assert.Equal(t, enums.ChannelKiosk, got.Channel)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, int64(7), got.Lines[0].Product)
}

func TestSubscriptionActions(t *testing.T) {
	var paths []string
	var cancelBody map[string]string
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/subscriptions/5/cancel/" {
			json.NewDecoder(r.Body).Decode(&cancelBody)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 5, "plan": 2, "status": "PAUSED"})
	}))
	sess.Login(context.Background(), types.UserProfile{ID: 1}, "tok")
	ctx := context.Background()

	_, err := client.PauseSubscription(ctx, 5)
	require.NoError(t, err)
	_, err = client.ResumeSubscription(ctx, 5)
	require.NoError(t, err)
	_, err = client.CancelSubscription(ctx, 5, "moving away")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"POST /subscriptions/5/pause/",
		"POST /subscriptions/5/resume/",
		"POST /subscriptions/5/cancel/",
	}, paths)
	assert.Equal(t, map[string]string{"reason": "moving away"}, cancelBody)
}

func TestListUpcomingDeliveriesFilter(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/subscriptions/deliveries/", r.URL.Path)
		require.Equal(t, "PENDING", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode([]map[string]any{{"id": 9, "subscription": 5, "status": "PENDING"}})
	}))
	sess.Login(context.Background(), types.UserProfile{ID: 1}, "tok")

	deliveries, err := client.ListUpcomingDeliveries(context.Background())
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	assert.Equal(t, int64(5), deliveries[0].Subscription)
}
