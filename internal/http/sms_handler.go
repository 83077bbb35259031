package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/domain"
	"github.com/ram-fashion/storefront/internal/sms"
)

type SMSHandler struct {
	sender sms.Sender
	logger *zap.Logger
}

func NewSMSHandler(sender sms.Sender, logger *zap.Logger) *SMSHandler {
	return &SMSHandler{sender: sender, logger: logger}
}

type SendSMSRequestDTO struct {
	To      string                  `json:"to"`
	Message string                  `json:"message"`
	Type    domain.NotificationType `json:"type"`
}

type SendSMSResponseDTO struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

func (h *SMSHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendSMSRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.To == "" || req.Message == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "to and message are required")
		return
	}

	result, err := h.sender.Send(r.Context(), sms.Message{To: req.To, Body: req.Message, Type: req.Type})
	if err != nil {
		h.logger.Error("failed to send sms", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "send_failed", "failed to send sms")
		return
	}

	respondJSON(w, http.StatusOK, SendSMSResponseDTO{Success: true, MessageID: result.MessageID})
}
