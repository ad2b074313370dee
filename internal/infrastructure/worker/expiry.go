// Package worker hosts the background expiry poller that turns
// soon-to-expire pantry items into notifications.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/domain/inventory"
	"github.com/pantrychef/v1/internal/infrastructure/config"
	"github.com/pantrychef/v1/internal/ports/outbound"
)

// ExpiryWorker periodically scans for items expiring inside the
// configured window and creates one notification per item per scan
// interval.
type ExpiryWorker struct {
	items         outbound.FoodItemRepository
	notifications outbound.NotificationRepository
	interval      time.Duration
	window        time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

// NewExpiryWorker creates the worker.
func NewExpiryWorker(
	items outbound.FoodItemRepository,
	notifications outbound.NotificationRepository,
	cfg config.ExpiryConfig,
	logger *zap.Logger,
) *ExpiryWorker {
	return &ExpiryWorker{
		items:         items,
		notifications: notifications,
		interval:      cfg.Interval,
		window:        cfg.Window,
		logger:        logger.Named("expiry-worker"),
		now:           time.Now,
	}
}

// Run polls until the context is cancelled. An immediate first scan
// avoids a silent first interval after startup.
func (w *ExpiryWorker) Run(ctx context.Context) {
	w.logger.Info("Expiry worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("window", w.window),
	)

	w.scan(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Expiry worker stopped")
			return
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *ExpiryWorker) scan(ctx context.Context) {
	now := w.now()
	cutoff := now.Add(w.window)

	items, err := w.items.FindExpiringBefore(ctx, cutoff)
	if err != nil {
		w.logger.Error("Expiry scan failed", zap.Error(err))
		return
	}

	created := 0
	for _, item := range items {
		ok, err := w.notify(ctx, item, now)
		if err != nil {
			w.logger.Warn("Failed to create expiry notification",
				zap.String("item_id", item.ID().String()),
				zap.Error(err),
			)
			continue
		}
		if ok {
			created++
		}
	}

	if created > 0 {
		w.logger.Info("Expiry scan completed",
			zap.Int("expiring", len(items)),
			zap.Int("notified", created),
		)
	}
}

// notify creates the alert unless one already exists for this item in
// the current window. Deduplication keys on the scan interval so a
// restart does not re-alert immediately.
func (w *ExpiryWorker) notify(ctx context.Context, item *inventory.FoodItem, now time.Time) (bool, error) {
	exists, err := w.notifications.ExistsForItemSince(ctx, item.ID(), now.Add(-w.window))
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	n := &inventory.Notification{
		ID:        uuid.New(),
		UserID:    item.UserID(),
		ItemID:    item.ID(),
		Message:   expiryMessage(item, now),
		CreatedAt: now,
	}
	if err := w.notifications.Create(ctx, n); err != nil {
		return false, err
	}
	return true, nil
}

func expiryMessage(item *inventory.FoodItem, now time.Time) string {
	bestBefore := item.BestBefore()
	if bestBefore == nil {
		return fmt.Sprintf("%s is expiring soon", item.Name())
	}
	days := int(bestBefore.Sub(now).Hours() / 24)
	switch {
	case days < 0:
		return fmt.Sprintf("%s expired on %s", item.Name(), bestBefore.Format("2006-01-02"))
	case days == 0:
		return fmt.Sprintf("%s expires today", item.Name())
	case days == 1:
		return fmt.Sprintf("%s expires tomorrow", item.Name())
	default:
		return fmt.Sprintf("%s expires in %d days", item.Name(), days)
	}
}
