package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/infrastructure/http/middleware"
	"github.com/pantrychef/v1/internal/ports/inbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

// CookingHandler exposes the recipe consumption endpoint.
type CookingHandler struct {
	service  inbound.CookingService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCookingHandler creates the consumption API handler.
func NewCookingHandler(service inbound.CookingService, logger *zap.Logger) *CookingHandler {
	return &CookingHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("cooking-api"),
	}
}

// RegisterRoutes mounts the consumption endpoint.
func (h *CookingHandler) RegisterRoutes(r chi.Router) {
	r.Post("/recipes/{id}/consume", h.Consume)
}

type consumeRequest struct {
	Servings int `json:"servings" validate:"gte=0"`
}

// Consume cooks a recipe: matches its ingredients against the pantry
// and deducts the used quantities. An empty body means one batch at
// the recipe's own serving count.
func (h *CookingHandler) Consume(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewBadRequest("user identity missing"))
		return
	}

	recipeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || recipeID <= 0 {
		writeError(w, r, h.logger, apperrors.NewBadRequest("recipe id must be a positive integer"))
		return
	}

	var req consumeRequest
	if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil && decodeErr != io.EOF {
		writeError(w, r, h.logger, apperrors.NewBadRequest("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, apperrors.NewValidation(err.Error()))
		return
	}

	result, err := h.service.ConsumeRecipe(r.Context(), inbound.ConsumeRecipeCommand{
		UserID:   userID,
		RecipeID: recipeID,
		Servings: req.Servings,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
