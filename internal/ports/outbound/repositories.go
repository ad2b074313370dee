// Package outbound defines the interfaces for outbound ports (driven
// adapters): persistence, caching and the external HTTP collaborators.
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pantrychef/v1/internal/domain/inventory"
	"github.com/pantrychef/v1/internal/domain/recipe"
	"github.com/pantrychef/v1/internal/domain/shoppinglist"
)

// FoodItemRepository is the persistence port for pantry items.
type FoodItemRepository interface {
	Create(ctx context.Context, item *inventory.FoodItem) error
	Update(ctx context.Context, item *inventory.FoodItem) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*inventory.FoodItem, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*inventory.FoodItem, error)
	FindExpiringBefore(ctx context.Context, cutoff time.Time) ([]*inventory.FoodItem, error)

	// ApplyDeductions persists a batch of quantity updates in a single
	// transaction. Either every update lands or none does; a partially
	// debited pantry is never observable.
	ApplyDeductions(ctx context.Context, userID uuid.UUID, updates []QuantityUpdate) error
}

// QuantityUpdate is one (item, new quantity) pair of a deduction batch.
type QuantityUpdate struct {
	ItemID   uuid.UUID
	Quantity float64
}

// ShoppingListRepository is the persistence port for shopping lists.
type ShoppingListRepository interface {
	Create(ctx context.Context, item *shoppinglist.Item) error
	CreateBatch(ctx context.Context, items []*shoppinglist.Item) error
	Update(ctx context.Context, item *shoppinglist.Item) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*shoppinglist.Item, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*shoppinglist.Item, error)
}

// NotificationRepository is the persistence port for expiry alerts.
type NotificationRepository interface {
	Create(ctx context.Context, n *inventory.Notification) error
	FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*inventory.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error

	// ExistsForItemSince dedupes the expiry worker: one alert per item
	// per polling window.
	ExistsForItemSince(ctx context.Context, itemID uuid.UUID, since time.Time) (bool, error)
}

// CacheRepository is the caching port, backed by Redis in production.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RecipeSource is the third-party recipe API port.
type RecipeSource interface {
	Search(ctx context.Context, query string, limit int) ([]recipe.Summary, error)
	FindByID(ctx context.Context, id int64) (*recipe.Recipe, error)
}

// Product is the barcode lookup result projected from Open Food Facts.
type Product struct {
	Barcode    string  `json:"barcode"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand,omitempty"`
	Quantity   string  `json:"quantity,omitempty"`
	Kcal100g   float64 `json:"kcal_100g,omitempty"`
	Protein100 float64 `json:"protein_100g,omitempty"`
	Carbs100   float64 `json:"carbs_100g,omitempty"`
	Fat100     float64 `json:"fat_100g,omitempty"`
}

// BarcodeSource is the product database port.
type BarcodeSource interface {
	Lookup(ctx context.Context, barcode string) (*Product, error)
}

// AISuggestion is one AI-proposed dish.
type AISuggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Uses        []string `json:"uses"`
	MissingFor  []string `json:"missing,omitempty"`
}

// AIService is the recipe suggestion port.
type AIService interface {
	SuggestRecipes(ctx context.Context, pantry []string, preferences []string, limit int) ([]AISuggestion, error)
}
