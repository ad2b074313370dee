// Package inbound defines the interfaces for inbound ports (driving
// adapters): the use cases the HTTP layer invokes, plus their command
// and DTO shapes.
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pantrychef/v1/internal/domain/recipe"
	"github.com/pantrychef/v1/internal/ports/outbound"
)

// CookingService hosts the recipe-consumption use case built on the
// matching and deduction core.
type CookingService interface {
	ConsumeRecipe(ctx context.Context, cmd ConsumeRecipeCommand) (*ConsumeRecipeResult, error)
}

// ConsumeRecipeCommand asks to cook a recipe from the user's pantry.
// Servings 0 means "use the recipe's own serving count".
type ConsumeRecipeCommand struct {
	UserID   uuid.UUID
	RecipeID int64
	Servings int
}

// WarningKind classifies per-ingredient warnings in a consume result.
type WarningKind string

const (
	WarningMissing      WarningKind = "missing_ingredient"
	WarningInsufficient WarningKind = "insufficient_quantity"
	WarningUnitMismatch WarningKind = "incompatible_units"
	WarningInvalidInput WarningKind = "invalid_input"
)

// Warning is one non-fatal problem hit while consuming a recipe.
type Warning struct {
	Kind       WarningKind `json:"kind"`
	Ingredient string      `json:"ingredient"`
	Detail     string      `json:"detail,omitempty"`
}

// UpdatedItem reports one pantry item the consumption debited.
type UpdatedItem struct {
	ItemID           uuid.UUID `json:"item_id"`
	Name             string    `json:"name"`
	PreviousQuantity float64   `json:"previous_quantity"`
	NewQuantity      float64   `json:"new_quantity"`
	Unit             string    `json:"unit"`
}

// MissingIngredient carries the requested amount and unit so the entry
// can feed a shopping list.
type MissingIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// ConsumeRecipeResult is the consume endpoint's payload.
type ConsumeRecipeResult struct {
	RecipeID int64               `json:"recipe_id"`
	Title    string              `json:"title"`
	Updated  []UpdatedItem       `json:"updated"`
	Missing  []MissingIngredient `json:"missing"`
	Warnings []Warning           `json:"warnings"`
	Elapsed  time.Duration       `json:"elapsed_ms"`
}

// InventoryService hosts pantry CRUD and expiry queries.
type InventoryService interface {
	List(ctx context.Context, userID uuid.UUID) ([]FoodItemDTO, error)
	Get(ctx context.Context, userID, itemID uuid.UUID) (*FoodItemDTO, error)
	Create(ctx context.Context, cmd CreateFoodItemCommand) (*FoodItemDTO, error)
	Update(ctx context.Context, cmd UpdateFoodItemCommand) (*FoodItemDTO, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	Expiring(ctx context.Context, userID uuid.UUID, within time.Duration) ([]FoodItemDTO, error)
}

// CreateFoodItemCommand creates a pantry item.
type CreateFoodItemCommand struct {
	UserID     uuid.UUID
	Name       string
	Category   string
	Quantity   float64
	Unit       string
	BestBefore *time.Time
}

// UpdateFoodItemCommand applies partial updates; nil fields are left
// untouched.
type UpdateFoodItemCommand struct {
	UserID     uuid.UUID
	ItemID     uuid.UUID
	Name       *string
	Category   *string
	Quantity   *float64
	Unit       *string
	BestBefore *time.Time
}

// FoodItemDTO is the API projection of a pantry item.
type FoodItemDTO struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Category   string     `json:"category,omitempty"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit,omitempty"`
	BestBefore *time.Time `json:"best_before,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// RecipeService hosts search, lookup and AI suggestions.
type RecipeService interface {
	Search(ctx context.Context, query string, limit int) ([]recipe.Summary, error)
	GetByID(ctx context.Context, id int64) (*recipe.Recipe, error)
	SuggestFromPantry(ctx context.Context, userID uuid.UUID, preferences []string, limit int) ([]outbound.AISuggestion, error)
}

// ShoppingListService hosts shopping list operations.
type ShoppingListService interface {
	List(ctx context.Context, userID uuid.UUID) ([]ShoppingItemDTO, error)
	Add(ctx context.Context, cmd AddShoppingItemCommand) (*ShoppingItemDTO, error)
	AddMissing(ctx context.Context, userID uuid.UUID, missing []MissingIngredient) ([]ShoppingItemDTO, error)
	Toggle(ctx context.Context, userID, itemID uuid.UUID) (*ShoppingItemDTO, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

// AddShoppingItemCommand adds one entry to the user's list.
type AddShoppingItemCommand struct {
	UserID uuid.UUID
	Name   string
	Amount float64
	Unit   string
}

// ShoppingItemDTO is the API projection of a shopping list entry.
type ShoppingItemDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount,omitempty"`
	Unit      string    `json:"unit,omitempty"`
	Checked   bool      `json:"checked"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationService lists and acknowledges expiry alerts.
type NotificationService interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]NotificationDTO, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}

// NotificationDTO is the API projection of an expiry alert.
type NotificationDTO struct {
	ID        uuid.UUID  `json:"id"`
	ItemID    uuid.UUID  `json:"item_id"`
	Message   string     `json:"message"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
