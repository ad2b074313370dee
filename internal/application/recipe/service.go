// Package recipe provides the application layer for recipe discovery:
// search and lookup against the third-party source with Redis caching,
// and AI suggestions driven by the user's pantry.
package recipe

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/pantrychef/v1/internal/domain/recipe"
	"github.com/pantrychef/v1/internal/ports/inbound"
	"github.com/pantrychef/v1/internal/ports/outbound"
	"github.com/pantrychef/v1/pkg/errors"
)

// Service implements inbound.RecipeService.
type Service struct {
	source   outbound.RecipeSource
	items    outbound.FoodItemRepository
	cache    outbound.CacheRepository
	ai       outbound.AIService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService creates the recipe service.
func NewService(
	source outbound.RecipeSource,
	items outbound.FoodItemRepository,
	cache outbound.CacheRepository,
	ai outbound.AIService,
	cacheTTL time.Duration,
	logger *zap.Logger,
) inbound.RecipeService {
	return &Service{
		source:   source,
		items:    items,
		cache:    cache,
		ai:       ai,
		cacheTTL: cacheTTL,
		logger:   logger.Named("recipe-service"),
	}
}

// Search queries the recipe source, serving repeated queries from
// cache. Cache failures degrade to a source hit, never to an error.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]domain.Summary, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	key := fmt.Sprintf("recipes:search:%s:%d", query, limit)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var summaries []domain.Summary
		if err := json.Unmarshal(cached, &summaries); err == nil {
			return summaries, nil
		}
	}

	summaries, err := s.source.Search(ctx, query, limit)
	if err != nil {
		return nil, errors.NewExternalService("recipe API", err)
	}

	if payload, err := json.Marshal(summaries); err == nil {
		if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
			s.logger.Debug("Recipe search cache write failed", zap.Error(err))
		}
	}

	return summaries, nil
}

// GetByID fetches a full recipe, cached.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	key := fmt.Sprintf("recipes:detail:%d", id)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var rec domain.Recipe
		if err := json.Unmarshal(cached, &rec); err == nil {
			return &rec, nil
		}
	}

	rec, err := s.source.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, domain.ErrNotFound) {
			return nil, errors.NewRecipeNotFound(id)
		}
		return nil, errors.NewExternalService("recipe API", err)
	}
	if rec == nil {
		return nil, errors.NewRecipeNotFound(id)
	}

	if payload, err := json.Marshal(rec); err == nil {
		if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
			s.logger.Debug("Recipe detail cache write failed", zap.Error(err))
		}
	}

	return rec, nil
}

// SuggestFromPantry asks the AI service for dishes cookable from the
// user's current pantry contents.
func (s *Service) SuggestFromPantry(ctx context.Context, userID uuid.UUID, preferences []string, limit int) ([]outbound.AISuggestion, error) {
	if limit <= 0 || limit > 10 {
		limit = 3
	}

	items, err := s.items.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabase("load inventory", err)
	}
	if len(items) == 0 {
		return []outbound.AISuggestion{}, nil
	}

	pantry := make([]string, len(items))
	for i, item := range items {
		pantry[i] = item.Name()
	}

	suggestions, err := s.ai.SuggestRecipes(ctx, pantry, preferences, limit)
	if err != nil {
		return nil, errors.NewExternalService("AI service", err)
	}

	s.logger.Info("Pantry suggestions generated",
		zap.String("user_id", userID.String()),
		zap.Int("pantry_items", len(pantry)),
		zap.Int("suggestions", len(suggestions)),
	)

	return suggestions, nil
}
