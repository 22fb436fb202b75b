package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nopickles/nopickles/internal/metrics"
	"github.com/nopickles/nopickles/internal/models"
	"github.com/nopickles/nopickles/internal/session"
)

// SessionHandler handles the session lifecycle endpoints
type SessionHandler struct {
	store   *session.Store
	metrics *metrics.Registry
	logger  *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store *session.Store, metrics *metrics.Registry, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Start handles POST /api/session/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create()
	h.metrics.SessionsStarted.Inc()
	h.logger.Info("session started", "session_id", sess.ID)

	WriteJSON(w, http.StatusOK, models.SessionStartResponse{
		SessionID: sess.ID,
		Message:   "Welcome to NoPickles! What can I get for you today?",
	}, h.logger)
}

// End handles DELETE /api/session/{sessionID}
// Ending an unknown session is a no-op, matching session expiry semantics.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	h.store.Delete(sessionID)
	h.logger.Info("session ended", "session_id", sessionID)

	WriteJSON(w, http.StatusOK, map[string]string{"message": "Session ended"}, h.logger)
}
