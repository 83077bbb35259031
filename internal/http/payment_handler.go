package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/payment"
)

// PaymentHandler exposes the raw gateway endpoints used by the hosted payment
// widget: order creation and callback verification.
type PaymentHandler struct {
	gateway  payment.GatewayClient
	verifier *payment.Verifier
	logger   *zap.Logger
}

func NewPaymentHandler(gateway payment.GatewayClient, verifier *payment.Verifier, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		gateway:  gateway,
		verifier: verifier,
		logger:   logger,
	}
}

type CreateOrderRequestDTO struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type VerifyPaymentRequestDTO struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

type VerifyPaymentResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateOrder registers a gateway order for the given amount in paise.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_amount", "amount must be positive")
		return
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}

	order, err := h.gateway.CreateOrder(r.Context(), req.Amount, req.Currency)
	if err != nil {
		h.logger.Warn("gateway order creation failed", zap.Error(err))
		respondError(w, http.StatusBadGateway, "gateway_unavailable", "failed to create payment order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// VerifyPayment checks the callback signature. The outcome is reported in the
// body; a failed verification is a 400, not a server fault.
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if !h.verifier.Verify(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		h.logger.Warn("payment verification failed",
			zap.String("gateway_order_id", req.RazorpayOrderID),
			zap.String("gateway_payment_id", req.RazorpayPaymentID))
		respondJSON(w, http.StatusBadRequest, VerifyPaymentResponseDTO{
			Success: false,
			Message: "Payment verification failed",
		})
		return
	}

	respondJSON(w, http.StatusOK, VerifyPaymentResponseDTO{
		Success: true,
		Message: "Payment verified successfully",
	})
}
