// Package server assembles the chi router and runs the HTTP server
// with graceful shutdown.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/infrastructure/config"
	"github.com/pantrychef/v1/internal/infrastructure/http/handlers"
	"github.com/pantrychef/v1/internal/infrastructure/http/middleware"
	"github.com/pantrychef/v1/pkg/healthcheck"
)

// Handlers bundles the API handlers the server mounts.
type Handlers struct {
	Inventory    *handlers.InventoryHandler
	Cooking      *handlers.CookingHandler
	Recipe       *handlers.RecipeHandler
	ShoppingList *handlers.ShoppingListHandler
	Notification *handlers.NotificationHandler
	Barcode      *handlers.BarcodeHandler
}

// Server is the HTTP server.
type Server struct {
	config     *config.Config
	logger     *zap.Logger
	httpServer *http.Server
}

// New builds the router and server.
func New(cfg *config.Config, logger *zap.Logger, h Handlers, checker *healthcheck.Checker) *Server {
	mw := middleware.New(cfg, logger)

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Recoverer)
	r.Use(mw.Logger)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit)

	r.Get("/health", healthHandler(checker))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.UserID)

		h.Inventory.RegisterRoutes(r)
		h.Cooking.RegisterRoutes(r)
		h.Recipe.RegisterRoutes(r)
		h.ShoppingList.RegisterRoutes(r)
		h.Notification.RegisterRoutes(r)
		h.Barcode.RegisterRoutes(r)
	})

	return &Server{
		config: cfg,
		logger: logger.Named("server"),
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      r,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(checker *healthcheck.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		report := checker.Run(ctx)
		status := http.StatusOK
		if report.Status != healthcheck.StatusHealthy {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
	}
}
