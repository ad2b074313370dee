// Package handlers implements the REST API on chi, translating HTTP
// requests into application service calls.
package handlers

import (
	"encoding/json"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apperrors "github.com/pantrychef/v1/pkg/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	appErr := apperrors.Wrap(err, "request failed")

	requestID, _ := r.Context().Value(chimiddleware.RequestIDKey).(string)
	if appErr.StatusCode() >= 500 {
		logger.Error("Request error",
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}

	writeJSON(w, appErr.StatusCode(), apperrors.ToErrorResponse(appErr, requestID))
}
