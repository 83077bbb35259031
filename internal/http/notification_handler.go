package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/domain"
	"github.com/ram-fashion/storefront/internal/notification"
)

// StatsInvalidator marks derived stats stale after out-of-band log mutations.
type StatsInvalidator interface {
	Invalidate()
}

type NotificationHandler struct {
	dispatcher  *notification.Dispatcher
	invalidator StatsInvalidator
	logger      *zap.Logger
}

func NewNotificationHandler(dispatcher *notification.Dispatcher, invalidator StatsInvalidator, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		dispatcher:  dispatcher,
		invalidator: invalidator,
		logger:      logger,
	}
}

type AddNotificationRequestDTO struct {
	Type        domain.NotificationType `json:"type"`
	Message     string                  `json:"message"`
	UserID      string                  `json:"userId"`
	UserEmail   string                  `json:"userEmail"`
	ProductName string                  `json:"productName"`
	OrderValue  int64                   `json:"orderValue"`
}

type AddNotificationResponseDTO struct {
	Success      bool                `json:"success"`
	Message      string              `json:"message"`
	SMSSent      bool                `json:"smsSent"`
	Notification domain.Notification `json:"notification"`
}

type ListNotificationsResponseDTO struct {
	Notifications []domain.Notification `json:"notifications"`
	Count         int                   `json:"count"`
}

func (h *NotificationHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddNotificationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !req.Type.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_type", "unknown notification type")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "message is required")
		return
	}

	added, smsSent, err := h.dispatcher.Add(r.Context(), domain.Notification{
		Type:        req.Type,
		Message:     req.Message,
		UserID:      req.UserID,
		UserEmail:   req.UserEmail,
		ProductName: req.ProductName,
		OrderValue:  req.OrderValue,
	})
	if err != nil {
		h.logger.Error("failed to add notification", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, AddNotificationResponseDTO{
		Success:      true,
		Message:      "Notification processed",
		SMSSent:      smsSent,
		Notification: added,
	})
}

// List returns the retained log newest first, or only the transient recent
// entries when ?recent=true.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("recent") == "true" {
		items := h.dispatcher.Recent()
		respondJSON(w, http.StatusOK, ListNotificationsResponseDTO{Notifications: items, Count: len(items)})
		return
	}

	items, err := h.dispatcher.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list notifications", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, ListNotificationsResponseDTO{Notifications: items, Count: len(items)})
}

func (h *NotificationHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "notification_id")
	if err := h.dispatcher.Remove(r.Context(), id); err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "notification not found")
			return
		}
		h.logger.Error("failed to remove notification", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	h.invalidator.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.dispatcher.Clear(r.Context()); err != nil {
		h.logger.Error("failed to clear notifications", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	h.invalidator.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}
