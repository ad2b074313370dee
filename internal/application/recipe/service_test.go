package recipe

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/domain/inventory"
	domain "github.com/pantrychef/v1/internal/domain/recipe"
	"github.com/pantrychef/v1/internal/ports/outbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

type fakeSource struct {
	searches int
	fetches  int
	recipes  map[int64]*domain.Recipe
}

func (f *fakeSource) Search(_ context.Context, query string, _ int) ([]domain.Summary, error) {
	f.searches++
	return []domain.Summary{{ID: 1, Title: query}}, nil
}

func (f *fakeSource) FindByID(_ context.Context, id int64) (*domain.Recipe, error) {
	f.fetches++
	rec, ok := f.recipes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	return m.entries[key], nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.entries[key] = value
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func (m *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.entries[key]
	return ok, nil
}

type fakeItems struct {
	items []*inventory.FoodItem
}

func (f *fakeItems) Create(_ context.Context, _ *inventory.FoodItem) error { return nil }
func (f *fakeItems) Update(_ context.Context, _ *inventory.FoodItem) error { return nil }
func (f *fakeItems) Delete(_ context.Context, _, _ uuid.UUID) error        { return nil }
func (f *fakeItems) FindByID(_ context.Context, _, _ uuid.UUID) (*inventory.FoodItem, error) {
	return nil, inventory.ErrItemNotFound
}
func (f *fakeItems) FindByUserID(_ context.Context, _ uuid.UUID) ([]*inventory.FoodItem, error) {
	return f.items, nil
}
func (f *fakeItems) FindExpiringBefore(_ context.Context, _ time.Time) ([]*inventory.FoodItem, error) {
	return nil, nil
}
func (f *fakeItems) ApplyDeductions(_ context.Context, _ uuid.UUID, _ []outbound.QuantityUpdate) error {
	return nil
}

type fakeAI struct {
	lastPantry []string
}

func (f *fakeAI) SuggestRecipes(_ context.Context, pantry []string, _ []string, _ int) ([]outbound.AISuggestion, error) {
	f.lastPantry = pantry
	return []outbound.AISuggestion{{Title: "Fried rice", Uses: pantry}}, nil
}

func pantryItem(userID uuid.UUID, name string) *inventory.FoodItem {
	now := time.Now()
	return inventory.Reconstitute(uuid.New(), userID, name, "", 1, "", nil, now, now)
}

func TestRecipeService(t *testing.T) {
	ctx := context.Background()

	t.Run("search result is cached", func(t *testing.T) {
		source := &fakeSource{}
		svc := NewService(source, &fakeItems{}, newMemoryCache(), &fakeAI{}, time.Hour, zap.NewNop())

		first, err := svc.Search(ctx, "lentil soup", 10)
		require.NoError(t, err)
		require.Len(t, first, 1)

		second, err := svc.Search(ctx, "lentil soup", 10)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, source.searches)
	})

	t.Run("detail served from cache on repeat", func(t *testing.T) {
		source := &fakeSource{recipes: map[int64]*domain.Recipe{
			42: {ID: 42, Title: "Carbonara", Servings: 2},
		}}
		cache := newMemoryCache()
		svc := NewService(source, &fakeItems{}, cache, &fakeAI{}, time.Hour, zap.NewNop())

		rec, err := svc.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "Carbonara", rec.Title)

		_, err = svc.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, 1, source.fetches)

		cached, ok := cache.entries["recipes:detail:42"]
		require.True(t, ok)
		var stored domain.Recipe
		require.NoError(t, json.Unmarshal(cached, &stored))
		assert.Equal(t, int64(42), stored.ID)
	})

	t.Run("unknown recipe maps to recipe not found", func(t *testing.T) {
		source := &fakeSource{recipes: map[int64]*domain.Recipe{}}
		svc := NewService(source, &fakeItems{}, newMemoryCache(), &fakeAI{}, time.Hour, zap.NewNop())

		_, err := svc.GetByID(ctx, 999)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeRecipeNotFound, apperrors.GetCode(err))
	})

	t.Run("suggestions use the pantry names", func(t *testing.T) {
		userID := uuid.New()
		items := &fakeItems{items: []*inventory.FoodItem{
			pantryItem(userID, "rice"),
			pantryItem(userID, "eggs"),
		}}
		ai := &fakeAI{}
		svc := NewService(&fakeSource{}, items, newMemoryCache(), ai, time.Hour, zap.NewNop())

		suggestions, err := svc.SuggestFromPantry(ctx, userID, nil, 3)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.ElementsMatch(t, []string{"rice", "eggs"}, ai.lastPantry)
	})

	t.Run("empty pantry yields no suggestions without an AI call", func(t *testing.T) {
		svc := NewService(&fakeSource{}, &fakeItems{}, newMemoryCache(), &fakeAI{}, time.Hour, zap.NewNop())

		suggestions, err := svc.SuggestFromPantry(ctx, uuid.New(), nil, 3)
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})
}
