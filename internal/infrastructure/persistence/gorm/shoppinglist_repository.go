package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrychef/v1/internal/domain/shoppinglist"
	"github.com/pantrychef/v1/internal/ports/outbound"
)

// ShoppingListRepository implements the shopping list persistence port.
type ShoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a shopping list repository.
func NewShoppingListRepository(db *gorm.DB) outbound.ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// Create inserts one entry.
func (r *ShoppingListRepository) Create(ctx context.Context, item *shoppinglist.Item) error {
	return r.db.WithContext(ctx).Create(ShoppingItemToModel(item)).Error
}

// CreateBatch inserts several entries in one statement.
func (r *ShoppingListRepository) CreateBatch(ctx context.Context, items []*shoppinglist.Item) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]*ShoppingListItemModel, len(items))
	for i, item := range items {
		models[i] = ShoppingItemToModel(item)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

// Update saves one entry.
func (r *ShoppingListRepository) Update(ctx context.Context, item *shoppinglist.Item) error {
	result := r.db.WithContext(ctx).Save(ShoppingItemToModel(item))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shoppinglist.ErrItemNotFound
	}
	return nil
}

// Delete removes one entry scoped to its owner.
func (r *ShoppingListRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&ShoppingListItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shoppinglist.ErrItemNotFound
	}
	return nil
}

// FindByID loads one entry scoped to its owner.
func (r *ShoppingListRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*shoppinglist.Item, error) {
	var model ShoppingListItemModel
	err := r.db.WithContext(ctx).
		First(&model, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoppinglist.ErrItemNotFound
		}
		return nil, err
	}
	return ModelToShoppingItem(&model), nil
}

// FindByUserID loads a user's list, unchecked entries first.
func (r *ShoppingListRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*shoppinglist.Item, error) {
	var models []ShoppingListItemModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("checked ASC, created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]*shoppinglist.Item, len(models))
	for i := range models {
		items[i] = ModelToShoppingItem(&models[i])
	}
	return items, nil
}
