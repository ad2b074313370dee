package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/infrastructure/http/middleware"
	"github.com/pantrychef/v1/internal/ports/inbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

// ShoppingListHandler exposes shopping list operations.
type ShoppingListHandler struct {
	service  inbound.ShoppingListService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewShoppingListHandler creates the shopping list API handler.
func NewShoppingListHandler(service inbound.ShoppingListService, logger *zap.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("shoppinglist-api"),
	}
}

// RegisterRoutes mounts the shopping list endpoints.
func (h *ShoppingListHandler) RegisterRoutes(r chi.Router) {
	r.Get("/shopping-list", h.List)
	r.Post("/shopping-list", h.Add)
	r.Post("/shopping-list/missing", h.AddMissing)
	r.Post("/shopping-list/{id}/toggle", h.Toggle)
	r.Delete("/shopping-list/{id}", h.Delete)
}

type addShoppingItemRequest struct {
	Name   string  `json:"name" validate:"required,max=200"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Unit   string  `json:"unit" validate:"max=50"`
}

type addMissingRequest struct {
	Missing []inbound.MissingIngredient `json:"missing" validate:"required,min=1,dive"`
}

func (h *ShoppingListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewBadRequest("user identity missing"))
		return
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *ShoppingListHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewBadRequest("user identity missing"))
		return
	}

	var req addShoppingItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequest("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, apperrors.NewValidation(err.Error()))
		return
	}

	item, err := h.service.Add(r.Context(), inbound.AddShoppingItemCommand{
		UserID: userID,
		Name:   req.Name,
		Amount: req.Amount,
		Unit:   req.Unit,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// AddMissing bulk-adds the missing ingredients produced by a recipe
// consumption.
func (h *ShoppingListHandler) AddMissing(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewBadRequest("user identity missing"))
		return
	}

	var req addMissingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequest("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, apperrors.NewValidation(err.Error()))
		return
	}

	items, err := h.service.AddMissing(r.Context(), userID, req.Missing)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"items": items})
}

func (h *ShoppingListHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewBadRequest("user identity missing"))
		return
	}
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequest("item id must be a valid UUID"))
		return
	}

	item, err := h.service.Toggle(r.Context(), userID, itemID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ShoppingListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewBadRequest("user identity missing"))
		return
	}
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequest("item id must be a valid UUID"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, itemID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
