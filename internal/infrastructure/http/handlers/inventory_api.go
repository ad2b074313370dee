package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/infrastructure/http/middleware"
	"github.com/pantrychef/v1/internal/ports/inbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

// InventoryHandler exposes pantry CRUD and expiry queries.
type InventoryHandler struct {
	service  inbound.InventoryService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewInventoryHandler creates the pantry API handler.
func NewInventoryHandler(service inbound.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("inventory-api"),
	}
}

// RegisterRoutes mounts the pantry endpoints.
func (h *InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/items", h.List)
	r.Post("/items", h.Create)
	r.Get("/items/expiring", h.Expiring)
	r.Get("/items/{id}", h.Get)
	r.Patch("/items/{id}", h.Update)
	r.Delete("/items/{id}", h.Delete)
}

type createItemRequest struct {
	Name       string     `json:"name" validate:"required,max=200"`
	Category   string     `json:"category" validate:"max=100"`
	Quantity   float64    `json:"quantity" validate:"gte=0"`
	Unit       string     `json:"unit" validate:"max=50"`
	BestBefore *time.Time `json:"best_before"`
}

type updateItemRequest struct {
	Name       *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Category   *string    `json:"category" validate:"omitempty,max=100"`
	Quantity   *float64   `json:"quantity" validate:"omitempty,gte=0"`
	Unit       *string    `json:"unit" validate:"omitempty,max=50"`
	BestBefore *time.Time `json:"best_before"`
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
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

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	item, err := h.service.Get(r.Context(), userID, itemID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewBadRequest("user identity missing"))
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequest("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, apperrors.NewValidation(err.Error()))
		return
	}

	item, err := h.service.Create(r.Context(), inbound.CreateFoodItemCommand{
		UserID:     userID,
		Name:       req.Name,
		Category:   req.Category,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		BestBefore: req.BestBefore,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequest("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, apperrors.NewValidation(err.Error()))
		return
	}

	item, err := h.service.Update(r.Context(), inbound.UpdateFoodItemCommand{
		UserID:     userID,
		ItemID:     itemID,
		Name:       req.Name,
		Category:   req.Category,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		BestBefore: req.BestBefore,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *InventoryHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewBadRequest("user identity missing"))
		return
	}

	within := 72 * time.Hour
	if raw := r.URL.Query().Get("within"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			writeError(w, r, h.logger, apperrors.NewBadRequest("within must be a positive duration"))
			return
		}
		within = d
	}

	items, err := h.service.Expiring(r.Context(), userID, within)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
