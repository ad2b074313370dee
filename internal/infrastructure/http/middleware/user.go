package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// UserID extracts the caller identity from the X-User-ID header.
// Authentication is handled upstream; the API trusts the header and
// only enforces that it is a well-formed UUID.
func (m *Middleware) UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			http.Error(w, `{"error":{"code":"BAD_REQUEST","message":"X-User-ID header is required"}}`,
				http.StatusBadRequest)
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, `{"error":{"code":"BAD_REQUEST","message":"X-User-ID must be a valid UUID"}}`,
				http.StatusBadRequest)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user id set by UserID.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
