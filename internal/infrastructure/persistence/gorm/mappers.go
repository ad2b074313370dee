package gorm

import (
	"github.com/pantrychef/v1/internal/domain/inventory"
	"github.com/pantrychef/v1/internal/domain/shoppinglist"
)

// FoodItemToModel converts a domain food item to its GORM model.
func FoodItemToModel(item *inventory.FoodItem) *FoodItemModel {
	return &FoodItemModel{
		ID:         item.ID(),
		UserID:     item.UserID(),
		Name:       item.Name(),
		Category:   item.Category(),
		Quantity:   item.Quantity(),
		Unit:       item.Unit(),
		BestBefore: item.BestBefore(),
		CreatedAt:  item.CreatedAt(),
		UpdatedAt:  item.UpdatedAt(),
	}
}

// ModelToFoodItem rebuilds a domain food item from its GORM model.
func ModelToFoodItem(model *FoodItemModel) *inventory.FoodItem {
	return inventory.Reconstitute(
		model.ID,
		model.UserID,
		model.Name,
		model.Category,
		model.Quantity,
		model.Unit,
		model.BestBefore,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ShoppingItemToModel converts a shopping list entry to its GORM model.
func ShoppingItemToModel(item *shoppinglist.Item) *ShoppingListItemModel {
	return &ShoppingListItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		Name:      item.Name,
		Amount:    item.Amount,
		Unit:      item.Unit,
		Checked:   item.Checked,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ModelToShoppingItem rebuilds a shopping list entry from its GORM model.
func ModelToShoppingItem(model *ShoppingListItemModel) *shoppinglist.Item {
	return &shoppinglist.Item{
		ID:        model.ID,
		UserID:    model.UserID,
		Name:      model.Name,
		Amount:    model.Amount,
		Unit:      model.Unit,
		Checked:   model.Checked,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NotificationToModel converts an expiry alert to its GORM model.
func NotificationToModel(n *inventory.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		ItemID:    n.ItemID,
		Message:   n.Message,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// ModelToNotification rebuilds an expiry alert from its GORM model.
func ModelToNotification(model *NotificationModel) *inventory.Notification {
	return &inventory.Notification{
		ID:        model.ID,
		UserID:    model.UserID,
		ItemID:    model.ItemID,
		Message:   model.Message,
		ReadAt:    model.ReadAt,
		CreatedAt: model.CreatedAt,
	}
}
