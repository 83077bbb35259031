package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/checkout"
	"github.com/ram-fashion/storefront/internal/domain"
	"github.com/ram-fashion/storefront/internal/order"
	"github.com/ram-fashion/storefront/internal/payment"
)

type NotifierStub struct{}

func (NotifierStub) Add(_ context.Context, n domain.Notification) (domain.Notification, bool, error) {
	return n, false, nil
}

func newCheckoutRouter(gateway payment.GatewayClient) *chi.Mux {
	pricing := domain.Pricing{
		FreeShippingThreshold: 1500,
		FlatShippingFee:       99,
		TaxRate:               decimal.RequireFromString("0.18"),
	}
	service := checkout.NewService(
		checkout.NewMemorySessionStore(),
		gateway,
		payment.NewVerifier(testSecret),
		order.NewBuilder("RAM-"),
		NotifierStub{},
		pricing,
		0,
		zap.NewNop(),
	)
	handler := NewCheckoutHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/checkout", func(r chi.Router) {
		r.Post("/", handler.Start)
		r.Route("/{session_id}", func(r chi.Router) {
			r.Get("/", handler.Get)
			r.Delete("/", handler.Abort)
			r.Post("/shipping", handler.SubmitShipping)
			r.Post("/back", handler.Back)
			r.Post("/payment", handler.SubmitPayment)
			r.Post("/payment/complete", handler.CompletePayment)
			r.Post("/payment/cancel", handler.CancelPayment)
		})
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, &body))
	return recorder
}

func decodeSession(t *testing.T, recorder *httptest.ResponseRecorder) checkout.Session {
	t.Helper()
	var session checkout.Session
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&session))
	return session
}

func startSession(t *testing.T, router http.Handler) checkout.Session {
	t.Helper()
	recorder := doJSON(t, router, "POST", "/api/checkout", StartCheckoutRequestDTO{
		Items: []domain.CartItem{
			{ProductID: 1, Name: "Oversized Tee", Price: 700, Size: "M", Quantity: 2},
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	return decodeSession(t, recorder)
}

func shippingPayload() domain.CheckoutForm {
	return domain.CheckoutForm{
		Email:     "demo@ram.com",
		FirstName: "Demo",
		LastName:  "User",
		Address:   "12 MG Road",
		City:      "Bengaluru",
		State:     "Karnataka",
		ZipCode:   "560001",
		Phone:     "+91 9876543210",
	}
}

func TestStartCheckout_EmptyCart(t *testing.T) {
	router := newCheckoutRouter(GatewayMock{})

	recorder := doJSON(t, router, "POST", "/api/checkout", StartCheckoutRequestDTO{})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestStartCheckout_ComputesSummary(t *testing.T) {
	router := newCheckoutRouter(GatewayMock{})

	session := startSession(t, router)

	assert.Equal(t, domain.CheckoutStatusShippingInfo, session.Status)
	assert.Equal(t, int64(1751), session.Summary.Total)
	assert.NotEmpty(t, session.ID)
}

func TestSubmitShipping_ValidationErrors(t *testing.T) {
	router := newCheckoutRouter(GatewayMock{})
	session := startSession(t, router)

	form := shippingPayload()
	form.Email = ""
	recorder := doJSON(t, router, "POST", "/api/checkout/"+session.ID+"/shipping", form)

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	var resp FieldErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Email is required", resp.Fields["email"])
}

func TestCheckoutFlow_SimulatedPaymentConfirms(t *testing.T) {
	router := newCheckoutRouter(GatewayMock{})
	session := startSession(t, router)

	recorder := doJSON(t, router, "POST", "/api/checkout/"+session.ID+"/shipping", shippingPayload())
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, domain.CheckoutStatusPayment, decodeSession(t, recorder).Status)

	recorder = doJSON(t, router, "POST", "/api/checkout/"+session.ID+"/payment",
		SubmitPaymentRequestDTO{PaymentMethod: domain.PaymentMethodCOD})
	require.Equal(t, http.StatusOK, recorder.Code)

	confirmed := decodeSession(t, recorder)
	assert.Equal(t, domain.CheckoutStatusConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.Order)
	assert.True(t, confirmed.CartCleared)
}

func TestCheckoutFlow_GatewayCompleteAndCancel(t *testing.T) {
	router := newCheckoutRouter(GatewayMock{
		order: &payment.GatewayOrder{ID: "order_abc", Amount: 175100, Currency: "INR"},
	})
	session := startSession(t, router)

	recorder := doJSON(t, router, "POST", "/api/checkout/"+session.ID+"/shipping", shippingPayload())
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, "POST", "/api/checkout/"+session.ID+"/payment",
		SubmitPaymentRequestDTO{PaymentMethod: domain.PaymentMethodRazorpay})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, decodeSession(t, recorder).GatewayOrder)

	// Dismissing the hosted flow lands in a retryable error state.
	recorder = doJSON(t, router, "POST", "/api/checkout/"+session.ID+"/payment/cancel", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	cancelled := decodeSession(t, recorder)
	assert.Equal(t, domain.CheckoutStatusPaymentError, cancelled.Status)
	assert.NotEmpty(t, cancelled.PaymentError)

	// Retry and complete with an authentic signature.
	recorder = doJSON(t, router, "POST", "/api/checkout/"+session.ID+"/payment",
		SubmitPaymentRequestDTO{PaymentMethod: domain.PaymentMethodRazorpay})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, "POST", "/api/checkout/"+session.ID+"/payment/complete",
		CompletePaymentRequestDTO{
			RazorpayOrderID:   "order_abc",
			RazorpayPaymentID: "pay_xyz",
			RazorpaySignature: sign("order_abc", "pay_xyz"),
		})
	require.Equal(t, http.StatusOK, recorder.Code)

	confirmed := decodeSession(t, recorder)
	assert.Equal(t, domain.CheckoutStatusConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.Order)
	assert.True(t, confirmed.Order.Payment.Verified)
}

func TestCompletePayment_WithoutPendingOrder(t *testing.T) {
	router := newCheckoutRouter(GatewayMock{})
	session := startSession(t, router)

	recorder := doJSON(t, router, "POST", "/api/checkout/"+session.ID+"/shipping", shippingPayload())
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, "POST", "/api/checkout/"+session.ID+"/payment/complete",
		CompletePaymentRequestDTO{RazorpayOrderID: "o", RazorpayPaymentID: "p", RazorpaySignature: "s"})

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestGetCheckout_UnknownSession(t *testing.T) {
	router := newCheckoutRouter(GatewayMock{})

	recorder := doJSON(t, router, "GET", "/api/checkout/nope", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAbortCheckout(t *testing.T) {
	router := newCheckoutRouter(GatewayMock{})
	session := startSession(t, router)

	recorder := doJSON(t, router, "DELETE", "/api/checkout/"+session.ID, nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = doJSON(t, router, "GET", "/api/checkout/"+session.ID, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
