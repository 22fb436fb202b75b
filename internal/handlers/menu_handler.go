package handlers

import (
	"log/slog"
	"net/http"

	"github.com/nopickles/nopickles/internal/menu"
	"github.com/nopickles/nopickles/internal/models"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	catalog *menu.Catalog
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(catalog *menu.Catalog, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// MenuResponse is the complete menu organized by category.
type MenuResponse struct {
	Categories      []string                     `json:"categories"`
	ItemsByCategory map[string][]models.MenuItem `json:"items_by_category"`
}

// GetMenu handles GET /api/menu
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	categories := h.catalog.Categories()
	byCategory := make(map[string][]models.MenuItem, len(categories))
	for _, category := range categories {
		items, err := h.catalog.ByCategory(category)
		if err != nil {
			h.logger.Error("failed to list category", "category", category, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
			return
		}
		byCategory[category] = items
	}

	WriteJSON(w, http.StatusOK, MenuResponse{
		Categories:      categories,
		ItemsByCategory: byCategory,
	}, h.logger)
}
