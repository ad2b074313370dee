package gorm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrychef/v1/internal/domain/inventory"
	"github.com/pantrychef/v1/internal/ports/outbound"
)

// NotificationRepository implements the expiry alert persistence port.
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a notification repository.
func NewNotificationRepository(db *gorm.DB) outbound.NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts an alert.
func (r *NotificationRepository) Create(ctx context.Context, n *inventory.Notification) error {
	return r.db.WithContext(ctx).Create(NotificationToModel(n)).Error
}

// FindByUserID loads a user's alerts, newest first.
func (r *NotificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*inventory.Notification, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}

	var models []NotificationModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	notifications := make([]*inventory.Notification, len(models))
	for i := range models {
		notifications[i] = ModelToNotification(&models[i])
	}
	return notifications, nil
}

// MarkRead stamps an alert as read.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", id, userID).
		Update("read_at", time.Now()).Error
}

// ExistsForItemSince reports whether an alert for the item was already
// recorded after the given time.
func (r *NotificationRepository) ExistsForItemSince(ctx context.Context, itemID uuid.UUID, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("item_id = ? AND created_at >= ?", itemID, since).
		Count(&count).Error
	return count > 0, err
}
