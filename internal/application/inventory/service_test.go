package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/pantrychef/v1/internal/domain/inventory"
	"github.com/pantrychef/v1/internal/ports/inbound"
	"github.com/pantrychef/v1/internal/ports/outbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

type fakeRepo struct {
	items map[uuid.UUID]*domain.FoodItem
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[uuid.UUID]*domain.FoodItem)}
}

func (f *fakeRepo) Create(_ context.Context, item *domain.FoodItem) error {
	f.items[item.ID()] = item
	return nil
}

func (f *fakeRepo) Update(_ context.Context, item *domain.FoodItem) error {
	f.items[item.ID()] = item
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	item, ok := f.items[id]
	if !ok || item.UserID() != userID {
		return domain.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*domain.FoodItem, error) {
	item, ok := f.items[id]
	if !ok || item.UserID() != userID {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*domain.FoodItem, error) {
	var out []*domain.FoodItem
	for _, item := range f.items {
		if item.UserID() == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindExpiringBefore(_ context.Context, _ time.Time) ([]*domain.FoodItem, error) {
	return nil, nil
}

func (f *fakeRepo) ApplyDeductions(_ context.Context, _ uuid.UUID, _ []outbound.QuantityUpdate) error {
	return nil
}

func TestInventoryService(t *testing.T) {
	userID := uuid.New()
	ctx := context.Background()

	newService := func(repo *fakeRepo) inbound.InventoryService {
		return NewService(repo, zap.NewNop())
	}

	t.Run("create and get round trip", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newService(repo)

		created, err := svc.Create(ctx, inbound.CreateFoodItemCommand{
			UserID:   userID,
			Name:     "olive oil",
			Category: "pantry",
			Quantity: 500,
			Unit:     "ml",
		})
		require.NoError(t, err)
		assert.Equal(t, "olive oil", created.Name)
		assert.Equal(t, 500.0, created.Quantity)

		got, err := svc.Get(ctx, userID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("create rejects empty name", func(t *testing.T) {
		svc := newService(newFakeRepo())

		_, err := svc.Create(ctx, inbound.CreateFoodItemCommand{
			UserID:   userID,
			Name:     "   ",
			Quantity: 1,
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeValidationFailed, apperrors.GetCode(err))
	})

	t.Run("get unknown item maps to item not found", func(t *testing.T) {
		svc := newService(newFakeRepo())

		_, err := svc.Get(ctx, userID, uuid.New())
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeItemNotFound, apperrors.GetCode(err))
	})

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newService(repo)

		created, err := svc.Create(ctx, inbound.CreateFoodItemCommand{
			UserID:   userID,
			Name:     "milk",
			Quantity: 1000,
			Unit:     "ml",
		})
		require.NoError(t, err)

		newQuantity := 750.0
		updated, err := svc.Update(ctx, inbound.UpdateFoodItemCommand{
			UserID:   userID,
			ItemID:   created.ID,
			Quantity: &newQuantity,
		})
		require.NoError(t, err)
		assert.Equal(t, 750.0, updated.Quantity)
		assert.Equal(t, "milk", updated.Name)
		assert.Equal(t, "ml", updated.Unit)
	})

	t.Run("update rejects negative quantity", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newService(repo)

		created, err := svc.Create(ctx, inbound.CreateFoodItemCommand{
			UserID:   userID,
			Name:     "flour",
			Quantity: 500,
			Unit:     "g",
		})
		require.NoError(t, err)

		bad := -1.0
		_, err = svc.Update(ctx, inbound.UpdateFoodItemCommand{
			UserID:   userID,
			ItemID:   created.ID,
			Quantity: &bad,
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeValidationFailed, apperrors.GetCode(err))
	})

	t.Run("items are scoped to their owner", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newService(repo)

		created, err := svc.Create(ctx, inbound.CreateFoodItemCommand{
			UserID:   userID,
			Name:     "butter",
			Quantity: 250,
			Unit:     "g",
		})
		require.NoError(t, err)

		_, err = svc.Get(ctx, uuid.New(), created.ID)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeItemNotFound, apperrors.GetCode(err))
	})

	t.Run("expiring filters by window", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newService(repo)

		soon := time.Now().Add(24 * time.Hour)
		later := time.Now().Add(30 * 24 * time.Hour)

		_, err := svc.Create(ctx, inbound.CreateFoodItemCommand{
			UserID: userID, Name: "yogurt", Quantity: 4, Unit: "pcs", BestBefore: &soon,
		})
		require.NoError(t, err)
		_, err = svc.Create(ctx, inbound.CreateFoodItemCommand{
			UserID: userID, Name: "rice", Quantity: 1000, Unit: "g", BestBefore: &later,
		})
		require.NoError(t, err)

		expiring, err := svc.Expiring(ctx, userID, 72*time.Hour)
		require.NoError(t, err)
		require.Len(t, expiring, 1)
		assert.Equal(t, "yogurt", expiring[0].Name)
	})

	t.Run("delete removes the item", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newService(repo)

		created, err := svc.Create(ctx, inbound.CreateFoodItemCommand{
			UserID: userID, Name: "eggs", Quantity: 12, Unit: "pcs",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, userID, created.ID))

		_, err = svc.Get(ctx, userID, created.ID)
		assert.Equal(t, apperrors.CodeItemNotFound, apperrors.GetCode(err))
	})
}
