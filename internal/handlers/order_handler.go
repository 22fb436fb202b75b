package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/nopickles/nopickles/internal/agent"
	"github.com/nopickles/nopickles/internal/metrics"
	"github.com/nopickles/nopickles/internal/models"
	"github.com/nopickles/nopickles/internal/session"
)

// OrderHandler handles order finalization
type OrderHandler struct {
	store   *session.Store
	metrics *metrics.Registry
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(store *session.Store, metrics *metrics.Registry, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Complete handles POST /api/order/complete?session_id=...
// Finalization lives here rather than in the agent: the agent's checkout
// intent only summarizes, and the host layer confirms and discards the
// session.
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		WriteError(w, http.StatusBadRequest, "session_id is required", h.logger)
		return
	}

	sess, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			WriteError(w, http.StatusNotFound, "Session not found", h.logger)
			return
		}
		h.logger.Error("failed to look up session", "session_id", sessionID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	var confirmed *models.CompletedOrder
	sess.Do(func(_ *agent.Agent, o *models.Order) {
		if o.IsEmpty() {
			return
		}
		snapshot := o.Clone()
		confirmed = &models.CompletedOrder{
			OrderID:   uuid.New().String(),
			SessionID: sessionID,
			Items:     snapshot.Items,
			Total:     snapshot.Total,
			Status:    "confirmed",
		}
	})

	if confirmed == nil {
		WriteError(w, http.StatusBadRequest, "Cannot complete an empty order", h.logger)
		return
	}

	h.store.Delete(sessionID)
	h.metrics.OrdersCompleted.Inc()
	h.logger.Info("order completed",
		"order_id", confirmed.OrderID,
		"session_id", sessionID,
		"items_count", len(confirmed.Items),
		"total", confirmed.Total,
	)

	WriteJSON(w, http.StatusOK, confirmed, h.logger)
}
