// Package main is the PantryChef API server entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	cookingapp "github.com/pantrychef/v1/internal/application/cooking"
	inventoryapp "github.com/pantrychef/v1/internal/application/inventory"
	notificationapp "github.com/pantrychef/v1/internal/application/notification"
	recipeapp "github.com/pantrychef/v1/internal/application/recipe"
	shoppinglistapp "github.com/pantrychef/v1/internal/application/shoppinglist"
	"github.com/pantrychef/v1/internal/infrastructure/ai/openai"
	"github.com/pantrychef/v1/internal/infrastructure/config"
	"github.com/pantrychef/v1/internal/infrastructure/http/handlers"
	"github.com/pantrychef/v1/internal/infrastructure/http/server"
	"github.com/pantrychef/v1/internal/infrastructure/openfoodfacts"
	gormpersistence "github.com/pantrychef/v1/internal/infrastructure/persistence/gorm"
	"github.com/pantrychef/v1/internal/infrastructure/persistence/postgres"
	redispersistence "github.com/pantrychef/v1/internal/infrastructure/persistence/redis"
	"github.com/pantrychef/v1/internal/infrastructure/recipeapi"
	"github.com/pantrychef/v1/internal/infrastructure/worker"
	"github.com/pantrychef/v1/pkg/healthcheck"
	"github.com/pantrychef/v1/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("pantrychef: %v", err)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer appLogger.Sync() //nolint:errcheck

	appLogger.Info("Starting PantryChef",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	db, err := postgres.Connect(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := gormpersistence.Migrate(db); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	redisClient := redispersistence.NewClient(cfg)

	// Repositories and external collaborators.
	itemRepo := gormpersistence.NewFoodItemRepository(db)
	shoppingRepo := gormpersistence.NewShoppingListRepository(db)
	notificationRepo := gormpersistence.NewNotificationRepository(db)
	cacheRepo := redispersistence.NewCacheRepository(redisClient, appLogger)
	recipeSource := recipeapi.NewClient(cfg.RecipeAPI, appLogger)
	barcodeSource := openfoodfacts.NewClient(cfg.OpenFoodFacts, appLogger)
	aiService := openai.NewClient(cfg.AI, appLogger)

	// Application services.
	cookingService := cookingapp.NewService(itemRepo, recipeSource, appLogger)
	inventoryService := inventoryapp.NewService(itemRepo, appLogger)
	recipeService := recipeapp.NewService(recipeSource, itemRepo, cacheRepo, aiService, cfg.Redis.RecipeTTL, appLogger)
	shoppingService := shoppinglistapp.NewService(shoppingRepo, appLogger)
	notificationService := notificationapp.NewService(notificationRepo, appLogger)

	checker := healthcheck.NewChecker(0)
	checker.Register("database", func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
	checker.Register("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})

	srv := server.New(cfg, appLogger, server.Handlers{
		Inventory:    handlers.NewInventoryHandler(inventoryService, appLogger),
		Cooking:      handlers.NewCookingHandler(cookingService, appLogger),
		Recipe:       handlers.NewRecipeHandler(recipeService, appLogger),
		ShoppingList: handlers.NewShoppingListHandler(shoppingService, appLogger),
		Notification: handlers.NewNotificationHandler(notificationService, appLogger),
		Barcode:      handlers.NewBarcodeHandler(barcodeSource, appLogger),
	}, checker)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Expiry.Enabled {
		expiryWorker := worker.NewExpiryWorker(itemRepo, notificationRepo, cfg.Expiry, appLogger)
		go expiryWorker.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := redisClient.Close(); err != nil {
		appLogger.Warn("Redis close failed", zap.Error(err))
	}

	appLogger.Info("PantryChef stopped")
	return nil
}
