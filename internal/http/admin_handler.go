package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/admin"
)

type AdminHandler struct {
	aggregator *admin.Aggregator
	logger     *zap.Logger
}

func NewAdminHandler(aggregator *admin.Aggregator, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{aggregator: aggregator, logger: logger}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.aggregator.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to compute stats", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
