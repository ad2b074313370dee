// Package gorm provides GORM model definitions and repository
// implementations for the application's persistence ports.
package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodItemModel is the GORM model for pantry items.
type FoodItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null;index"`
	Category   string    `gorm:"type:varchar(100);index"`
	Quantity   float64   `gorm:"not null;default:0;check:quantity >= 0"`
	Unit       string    `gorm:"type:varchar(50)"`
	BestBefore *time.Time `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default pluralization.
func (FoodItemModel) TableName() string { return "food_items" }

// ShoppingListItemModel is the GORM model for shopping list entries.
type ShoppingListItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Amount    float64   `gorm:"default:0"`
	Unit      string    `gorm:"type:varchar(50)"`
	Checked   bool      `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShoppingListItemModel) TableName() string { return "shopping_list_items" }

// NotificationModel is the GORM model for expiry alerts.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string { return "notifications" }

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&FoodItemModel{},
		&ShoppingListItemModel{},
		&NotificationModel{},
	)
}
