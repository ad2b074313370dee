package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrychef/v1/internal/domain/inventory"
	"github.com/pantrychef/v1/internal/ports/outbound"
)

// FoodItemRepository implements the pantry persistence port using GORM.
type FoodItemRepository struct {
	db *gorm.DB
}

// NewFoodItemRepository creates a food item repository.
func NewFoodItemRepository(db *gorm.DB) outbound.FoodItemRepository {
	return &FoodItemRepository{db: db}
}

// Create inserts a pantry item.
func (r *FoodItemRepository) Create(ctx context.Context, item *inventory.FoodItem) error {
	return r.db.WithContext(ctx).Create(FoodItemToModel(item)).Error
}

// Update saves a pantry item.
func (r *FoodItemRepository) Update(ctx context.Context, item *inventory.FoodItem) error {
	result := r.db.WithContext(ctx).Save(FoodItemToModel(item))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}

// Delete soft-deletes a pantry item scoped to its owner.
func (r *FoodItemRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&FoodItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}

// FindByID loads one pantry item scoped to its owner.
func (r *FoodItemRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*inventory.FoodItem, error) {
	var model FoodItemModel
	err := r.db.WithContext(ctx).
		First(&model, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrItemNotFound
		}
		return nil, err
	}
	return ModelToFoodItem(&model), nil
}

// FindByUserID loads a user's full pantry, oldest first for stable
// matching output.
func (r *FoodItemRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*inventory.FoodItem, error) {
	var models []FoodItemModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]*inventory.FoodItem, len(models))
	for i := range models {
		items[i] = ModelToFoodItem(&models[i])
	}
	return items, nil
}

// FindExpiringBefore loads items across all users whose best-before
// date falls before the cutoff. Used by the expiry worker.
func (r *FoodItemRepository) FindExpiringBefore(ctx context.Context, cutoff time.Time) ([]*inventory.FoodItem, error) {
	var models []FoodItemModel
	err := r.db.WithContext(ctx).
		Where("best_before IS NOT NULL AND best_before <= ?", cutoff).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]*inventory.FoodItem, len(models))
	for i := range models {
		items[i] = ModelToFoodItem(&models[i])
	}
	return items, nil
}

// ApplyDeductions persists a deduction batch in a single transaction.
// A missing row aborts the whole batch so a half-debited pantry is
// never committed.
func (r *FoodItemRepository) ApplyDeductions(ctx context.Context, userID uuid.UUID, updates []outbound.QuantityUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			result := tx.Model(&FoodItemModel{}).
				Where("id = ? AND user_id = ?", update.ItemID, userID).
				Updates(map[string]interface{}{
					"quantity":   update.Quantity,
					"updated_at": time.Now(),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return inventory.ErrItemNotFound
			}
		}
		return nil
	})
}
