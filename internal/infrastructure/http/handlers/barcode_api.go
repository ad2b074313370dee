package handlers

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/ports/outbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

// EAN-8 through EAN-13 plus UPC-A.
var barcodePattern = regexp.MustCompile(`^\d{8,13}$`)

// BarcodeHandler exposes product lookup by barcode, used to prefill
// the pantry item form after a scan.
type BarcodeHandler struct {
	source outbound.BarcodeSource
	logger *zap.Logger
}

// NewBarcodeHandler creates the barcode lookup handler.
func NewBarcodeHandler(source outbound.BarcodeSource, logger *zap.Logger) *BarcodeHandler {
	return &BarcodeHandler{
		source: source,
		logger: logger.Named("barcode-api"),
	}
}

// RegisterRoutes mounts the lookup endpoint.
func (h *BarcodeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/products/{barcode}", h.Lookup)
}

func (h *BarcodeHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	barcode := chi.URLParam(r, "barcode")
	if !barcodePattern.MatchString(barcode) {
		writeError(w, r, h.logger, apperrors.NewBadRequest("barcode must be 8 to 13 digits"))
		return
	}

	product, err := h.source.Lookup(r.Context(), barcode)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
