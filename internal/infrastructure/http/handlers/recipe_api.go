package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/infrastructure/http/middleware"
	"github.com/pantrychef/v1/internal/ports/inbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// RecipeHandler exposes recipe search, detail and suggestions.
type RecipeHandler struct {
	service inbound.RecipeService
	logger  *zap.Logger
}

// NewRecipeHandler creates the recipe API handler.
func NewRecipeHandler(service inbound.RecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: service,
		logger:  logger.Named("recipe-api"),
	}
}

// RegisterRoutes mounts the recipe endpoints.
func (h *RecipeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/recipes/search", h.Search)
	r.Get("/recipes/suggestions", h.Suggestions)
	r.Get("/recipes/{id}", h.Get)
}

func (h *RecipeHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, h.logger, apperrors.NewBadRequest("query parameter q is required"))
		return
	}
	limit := parseLimit(r.URL.Query().Get("limit"))

	summaries, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": summaries})
}

func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, h.logger, apperrors.NewBadRequest("recipe id must be a positive integer"))
		return
	}

	rec, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Suggestions returns AI dish ideas based on the caller's pantry.
// Preferences arrive as a comma-separated query parameter.
func (h *RecipeHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewBadRequest("user identity missing"))
		return
	}

	var preferences []string
	if raw := r.URL.Query().Get("preferences"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				preferences = append(preferences, p)
			}
		}
	}
	limit := parseLimit(r.URL.Query().Get("limit"))

	suggestions, err := h.service.SuggestFromPantry(r.Context(), userID, preferences, limit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

func parseLimit(raw string) int {
	if raw == "" {
		return defaultSearchLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultSearchLimit
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}
