// Package shoppinglist contains the shopping list domain.
package shoppinglist

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("shopping list entry name is required")
	ErrMissingUser  = errors.New("shopping list entry must belong to a user")
	ErrItemNotFound = errors.New("shopping list entry not found")
)

// Item is one shopping list entry. Amount and unit are optional hints
// carried over from missing-ingredient results so the buyer knows how
// much to get.
type Item struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    float64
	Unit      string
	Checked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem creates a shopping list entry with validation.
func NewItem(userID uuid.UUID, name string, amount float64, unit string) (*Item, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if amount < 0 {
		amount = 0
	}

	now := time.Now()
	return &Item{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		Unit:      strings.TrimSpace(unit),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Toggle flips the checked-off state.
func (i *Item) Toggle() {
	i.Checked = !i.Checked
	i.UpdatedAt = time.Now()
}
