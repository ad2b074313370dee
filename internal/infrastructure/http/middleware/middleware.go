// Package middleware provides the HTTP middleware chain: request
// identity, structured logging, panic recovery, rate limiting and
// CORS.
package middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pantrychef/v1/internal/infrastructure/config"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Middleware bundles the HTTP middleware chain.
type Middleware struct {
	config  *config.Config
	logger  *zap.Logger
	limiter *rate.Limiter
	metrics *Metrics
}

// New creates the middleware chain.
func New(cfg *config.Config, logger *zap.Logger) *Middleware {
	return &Middleware{
		config: cfg,
		logger: logger.Named("http"),
		limiter: rate.NewLimiter(
			rate.Limit(cfg.RateLimit.RequestsPerMin)/60,
			cfg.RateLimit.BurstSize,
		),
		metrics: NewMetrics(),
	}
}

// RequestID propagates an inbound X-Request-ID or mints one.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Logger logs each request with latency and status.
func (m *Middleware) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		m.metrics.Inc()
		defer m.metrics.Dec()

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		m.metrics.Observe(r.Method, r.URL.Path, ww.Status(), elapsed)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", elapsed),
			zap.String("remote", r.RemoteAddr),
		}
		if requestID, ok := r.Context().Value(chimiddleware.RequestIDKey).(string); ok {
			fields = append(fields, zap.String("request_id", requestID))
		}

		switch {
		case ww.Status() >= 500:
			m.logger.Error("Request failed", fields...)
		case ww.Status() >= 400:
			m.logger.Warn("Request rejected", fields...)
		default:
			m.logger.Info("Request completed", fields...)
		}
	})
}

// Recoverer converts panics into 500 responses instead of dropping
// the connection.
func (m *Middleware) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.logger.Error("Panic recovered",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				http.Error(w, `{"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`,
					http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RateLimit applies a process-wide token bucket.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	if !m.config.RateLimit.Enable {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow() {
			w.Header().Set("Retry-After", "60")
			http.Error(w, `{"error":{"code":"RATE_LIMITED","message":"Too many requests"}}`,
				http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CORS handles cross-origin requests for the browser frontend.
func (m *Middleware) CORS(next http.Handler) http.Handler {
	if !m.config.Server.EnableCORS {
		return next
	}
	allowed := m.config.Server.AllowedOrigins
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(origin, allowed) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Request-ID, X-User-ID")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}
