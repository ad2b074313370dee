// Package inventory contains the pantry domain: food items owned by a
// user, with quantities, units and best-before dates.
package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FoodItem is the pantry aggregate. Quantity is only ever mutated
// through SetQuantity / deduction persistence; the matching and
// deduction core works on read-only snapshots of it.
type FoodItem struct {
	id         uuid.UUID
	userID     uuid.UUID
	name       string
	category   string
	quantity   float64
	unit       string
	bestBefore *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// NewFoodItem creates a food item with validation.
func NewFoodItem(userID uuid.UUID, name, category string, quantity float64, unit string, bestBefore *time.Time) (*FoodItem, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	now := time.Now()
	return &FoodItem{
		id:         uuid.New(),
		userID:     userID,
		name:       strings.TrimSpace(name),
		category:   strings.TrimSpace(category),
		quantity:   quantity,
		unit:       strings.TrimSpace(unit),
		bestBefore: bestBefore,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Reconstitute rebuilds a food item from persisted state. It bypasses
// creation-time validation on purpose; the persistence layer is the
// only caller.
func Reconstitute(id, userID uuid.UUID, name, category string, quantity float64, unit string, bestBefore *time.Time, createdAt, updatedAt time.Time) *FoodItem {
	return &FoodItem{
		id:         id,
		userID:     userID,
		name:       name,
		category:   category,
		quantity:   quantity,
		unit:       unit,
		bestBefore: bestBefore,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (f *FoodItem) ID() uuid.UUID          { return f.id }
func (f *FoodItem) UserID() uuid.UUID      { return f.userID }
func (f *FoodItem) Name() string           { return f.name }
func (f *FoodItem) Category() string       { return f.category }
func (f *FoodItem) Quantity() float64      { return f.quantity }
func (f *FoodItem) Unit() string           { return f.unit }
func (f *FoodItem) BestBefore() *time.Time { return f.bestBefore }
func (f *FoodItem) CreatedAt() time.Time   { return f.createdAt }
func (f *FoodItem) UpdatedAt() time.Time   { return f.updatedAt }

// Rename updates the item name with validation.
func (f *FoodItem) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	f.name = strings.TrimSpace(name)
	f.updatedAt = time.Now()
	return nil
}

// SetQuantity replaces the stored quantity.
func (f *FoodItem) SetQuantity(quantity float64) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	f.quantity = quantity
	f.updatedAt = time.Now()
	return nil
}

// SetUnit replaces the unit string.
func (f *FoodItem) SetUnit(unit string) {
	f.unit = strings.TrimSpace(unit)
	f.updatedAt = time.Now()
}

// SetCategory replaces the category.
func (f *FoodItem) SetCategory(category string) {
	f.category = strings.TrimSpace(category)
	f.updatedAt = time.Now()
}

// SetBestBefore replaces the best-before date.
func (f *FoodItem) SetBestBefore(t *time.Time) {
	f.bestBefore = t
	f.updatedAt = time.Now()
}

// ExpiresWithin reports whether the item's best-before date falls
// inside the window starting at now. Items without a date never expire.
func (f *FoodItem) ExpiresWithin(now time.Time, window time.Duration) bool {
	if f.bestBefore == nil {
		return false
	}
	return !f.bestBefore.After(now.Add(window))
}

// Notification is a recorded expiry alert for a food item. Delivery is
// out of scope; rows are polled by clients.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ItemID    uuid.UUID
	Message   string
	ReadAt    *time.Time
	CreatedAt time.Time
}
