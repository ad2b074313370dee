package worker

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/domain/inventory"
	"github.com/pantrychef/v1/internal/infrastructure/config"
	"github.com/pantrychef/v1/internal/ports/outbound"
)

type fakeItemRepo struct {
	outbound.FoodItemRepository
	expiring []*inventory.FoodItem
}

func (f *fakeItemRepo) FindExpiringBefore(_ context.Context, _ time.Time) ([]*inventory.FoodItem, error) {
	return f.expiring, nil
}

type fakeNotificationRepo struct {
	existing map[uuid.UUID]bool
	created  []*inventory.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *inventory.Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) FindByUserID(_ context.Context, _ uuid.UUID, _ bool) ([]*inventory.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

func (f *fakeNotificationRepo) ExistsForItemSince(_ context.Context, itemID uuid.UUID, _ time.Time) (bool, error) {
	return f.existing[itemID], nil
}

func expiringItem(userID uuid.UUID, name string, bestBefore time.Time) *inventory.FoodItem {
	now := time.Now()
	return inventory.Reconstitute(uuid.New(), userID, name, "", 1, "", &bestBefore, now, now)
}

func newTestWorker(items *fakeItemRepo, notifications *fakeNotificationRepo, now time.Time) *ExpiryWorker {
	w := NewExpiryWorker(items, notifications, config.ExpiryConfig{
		Interval: time.Hour,
		Window:   72 * time.Hour,
	}, zap.NewNop())
	w.now = func() time.Time { return now }
	return w
}

func TestExpiryWorkerScan(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("creates one notification per expiring item", func(t *testing.T) {
		milk := expiringItem(userID, "milk", now.Add(24*time.Hour))
		yogurt := expiringItem(userID, "yogurt", now.Add(48*time.Hour))
		items := &fakeItemRepo{expiring: []*inventory.FoodItem{milk, yogurt}}
		notifications := &fakeNotificationRepo{existing: map[uuid.UUID]bool{}}

		newTestWorker(items, notifications, now).scan(context.Background())

		require.Len(t, notifications.created, 2)
		assert.Equal(t, userID, notifications.created[0].UserID)
		assert.Equal(t, milk.ID(), notifications.created[0].ItemID)
		assert.Equal(t, "milk expires tomorrow", notifications.created[0].Message)
		assert.Equal(t, "yogurt expires in 2 days", notifications.created[1].Message)
	})

	t.Run("skips items already notified", func(t *testing.T) {
		milk := expiringItem(userID, "milk", now.Add(24*time.Hour))
		items := &fakeItemRepo{expiring: []*inventory.FoodItem{milk}}
		notifications := &fakeNotificationRepo{
			existing: map[uuid.UUID]bool{milk.ID(): true},
		}

		newTestWorker(items, notifications, now).scan(context.Background())

		assert.Empty(t, notifications.created)
	})

	t.Run("message for already expired item", func(t *testing.T) {
		cream := expiringItem(userID, "cream", now.Add(-24*time.Hour))
		items := &fakeItemRepo{expiring: []*inventory.FoodItem{cream}}
		notifications := &fakeNotificationRepo{existing: map[uuid.UUID]bool{}}

		newTestWorker(items, notifications, now).scan(context.Background())

		require.Len(t, notifications.created, 1)
		assert.Equal(t, "cream expired on 2025-05-31", notifications.created[0].Message)
	})

	t.Run("message for same-day expiry", func(t *testing.T) {
		eggs := expiringItem(userID, "eggs", now.Add(2*time.Hour))
		items := &fakeItemRepo{expiring: []*inventory.FoodItem{eggs}}
		notifications := &fakeNotificationRepo{existing: map[uuid.UUID]bool{}}

		newTestWorker(items, notifications, now).scan(context.Background())

		require.Len(t, notifications.created, 1)
		assert.Equal(t, "eggs expires today", notifications.created[0].Message)
	})
}
