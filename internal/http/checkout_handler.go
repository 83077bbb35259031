package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/checkout"
	"github.com/ram-fashion/storefront/internal/domain"
)

// CheckoutHandler exposes the checkout session flow. Validation failures come
// back as 422 with field messages; the session itself only moves on success.
type CheckoutHandler struct {
	service *checkout.Service
	logger  *zap.Logger
}

func NewCheckoutHandler(service *checkout.Service, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: service, logger: logger}
}

type StartCheckoutRequestDTO struct {
	Items []domain.CartItem `json:"items"`
}

type SubmitPaymentRequestDTO struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	CardNumber    string               `json:"cardNumber"`
	ExpiryDate    string               `json:"expiryDate"`
	CVV           string               `json:"cvv"`
	NameOnCard    string               `json:"nameOnCard"`
}

type CompletePaymentRequestDTO struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartCheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	cart := domain.Cart{}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be positive")
			return
		}
		cart.Add(item)
	}

	session, err := h.service.Start(r.Context(), cart)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, session)
}

func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Get(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *CheckoutHandler) Abort(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Abort(r.Context(), chi.URLParam(r, "session_id")); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	var form domain.CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	session, err := h.service.SubmitShipping(r.Context(), chi.URLParam(r, "session_id"), form)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if len(session.FieldErrors) > 0 {
		respondFieldErrors(w, session.FieldErrors)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Back(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req SubmitPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	session, err := h.service.SubmitPayment(r.Context(), chi.URLParam(r, "session_id"), checkout.PaymentSelection{
		Method:     req.PaymentMethod,
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
		NameOnCard: req.NameOnCard,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	if len(session.FieldErrors) > 0 {
		respondFieldErrors(w, session.FieldErrors)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *CheckoutHandler) CompletePayment(w http.ResponseWriter, r *http.Request) {
	var req CompletePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	session, err := h.service.CompleteGatewayPayment(r.Context(), chi.URLParam(r, "session_id"),
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *CheckoutHandler) CancelPayment(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.CancelGatewayPayment(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *CheckoutHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
	case errors.Is(err, checkout.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_transition", err.Error())
	case errors.Is(err, checkout.ErrNoPendingGatewayPay):
		respondError(w, http.StatusConflict, "no_pending_payment", err.Error())
	default:
		h.logger.Error("checkout request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
