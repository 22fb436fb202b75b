package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nopickles/nopickles/internal/agent"
	"github.com/nopickles/nopickles/internal/metrics"
	"github.com/nopickles/nopickles/internal/models"
	"github.com/nopickles/nopickles/internal/session"
)

// ChatHandler handles customer messages
type ChatHandler struct {
	store   *session.Store
	metrics *metrics.Registry
	logger  *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(store *session.Store, metrics *metrics.Registry, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Chat handles POST /api/chat
// The session's lock is held for the duration of the agent call, so at most
// one message mutates an order at a time.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	sess, err := h.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			h.logger.Info("chat for unknown session", "session_id", req.SessionID)
			WriteError(w, http.StatusNotFound, "Session not found. Please start a new session.", h.logger)
			return
		}
		h.logger.Error("failed to look up session", "session_id", req.SessionID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	var response models.ChatResponse
	var intent agent.Intent
	sess.Do(func(a *agent.Agent, o *models.Order) {
		result := a.Handle(req.Message, o)
		intent = result.Intent
		response = models.ChatResponse{
			Message:     result.Reply,
			Order:       o.Clone(),
			Suggestions: result.Suggestions,
		}
	})

	h.metrics.ChatMessages.WithLabelValues(string(intent)).Inc()
	h.logger.Debug("message handled",
		"session_id", req.SessionID,
		"intent", string(intent),
		"order_total", response.Order.Total,
	)

	WriteJSON(w, http.StatusOK, response, h.logger)
}
