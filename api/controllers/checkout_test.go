package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vergerducoin/verger-clients/pkg/enums"
	pkgerrors "github.com/vergerducoin/verger-clients/pkg/errors"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

type stubCheckoutGateway struct {
	got     *types.SaleInput
	sale    *types.Sale
	saleErr error
}

func (s *stubCheckoutGateway) CreateSale(ctx context.Context, input types.SaleInput) (*types.Sale, error) {
	s.got = &input
	if s.saleErr != nil {
		return nil, s.saleErr
	}
	return s.sale, nil
}

func kioskOptions() CheckoutConfig {
	return CheckoutConfig{Channel: enums.ChannelKiosk, Location: 1}
}

func TestCheckoutEmptyCart(t *testing.T) {
	c := newTestCart(t)
	gw := &stubCheckoutGateway{}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"payment_method":"CASH"}`))
	Checkout(c, newTestSession(t), gw, kioskOptions(), nil)(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, gw.got)
}

func TestCheckoutInvalidPaymentMethod(t *testing.T) {
	c := newTestCart(t)
	c.AddItem(context.Background(), testProduct(7, "2.00"), 1)
	gw := &stubCheckoutGateway{}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"payment_method":"BARTER"}`))
	Checkout(c, newTestSession(t), gw, kioskOptions(), nil)(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, gw.got)
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	c := newTestCart(t)
	c.AddItem(context.Background(), testProduct(7, "2.00"), 3)
	gw := &stubCheckoutGateway{sale: &types.Sale{ID: 41, SaleNumber: "V-2026-000041"}}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"payment_method":"CARD","customer_id":9}`))
	Checkout(c, newTestSession(t), gw, kioskOptions(), nil)(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, gw.got)
	assert.Equal(t, enums.ChannelKiosk, gw.got.Channel)
	assert.Equal(t, int64(1), gw.got.Location)
	require.NotNil(t, gw.got.Customer)
	assert.Equal(t, int64(9), *gw.got.Customer)
	require.Len(t, gw.got.Lines, 1)
	assert.Equal(t, int64(7), gw.got.Lines[0].Product)
	assert.Equal(t, 3, gw.got.Lines[0].Quantity)
	assert.True(t, c.IsEmpty())
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	c := newTestCart(t)
	c.AddItem(context.Background(), testProduct(7, "2.00"), 2)
	gw := &stubCheckoutGateway{saleErr: pkgerrors.New(pkgerrors.CodeDependency, "create sale failed")}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"payment_method":"CASH"}`))
	Checkout(c, newTestSession(t), gw, kioskOptions(), nil)(w, r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, 2, c.ItemCount())
}

func TestCheckoutUsesSessionCustomer(t *testing.T) {
	c := newTestCart(t)
	c.AddItem(context.Background(), testProduct(7, "2.00"), 1)
	gw := &stubCheckoutGateway{sale: &types.Sale{ID: 42}}

	sess := newTestSession(t)
	sess.Login(context.Background(), types.UserProfile{ID: 5, CustomerID: 77}, "tok")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"payment_method":"ONLINE"}`))
	Checkout(c, sess, gw, CheckoutConfig{Channel: enums.ChannelWeb, Location: 1}, nil)(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, gw.got.Customer)
	assert.Equal(t, int64(77), *gw.got.Customer)
}
