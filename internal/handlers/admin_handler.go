package handlers

import (
	"log/slog"
	"net/http"
)

// AdminHandler exposes operational endpoints guarded by API-key auth.
type AdminHandler struct {
	sessions sessionCounter
	logger   *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(sessions sessionCounter, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// GetSessionStats handles GET /api/admin/sessions (for debugging/monitoring)
func (h *AdminHandler) GetSessionStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"active_sessions": h.sessions.Len(),
	}, h.logger)
}
