// Package notification provides the application layer for expiry
// alerts recorded by the polling worker.
package notification

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/ports/inbound"
	"github.com/pantrychef/v1/internal/ports/outbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

// Service implements inbound.NotificationService.
type Service struct {
	repo   outbound.NotificationRepository
	logger *zap.Logger
}

// NewService creates the notification service.
func NewService(repo outbound.NotificationRepository, logger *zap.Logger) inbound.NotificationService {
	return &Service{
		repo:   repo,
		logger: logger.Named("notification-service"),
	}
}

// List returns the user's alerts, optionally unread only.
func (s *Service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]inbound.NotificationDTO, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID, unreadOnly)
	if err != nil {
		return nil, apperrors.NewDatabase("list notifications", err)
	}

	dtos := make([]inbound.NotificationDTO, len(notifications))
	for i, n := range notifications {
		dtos[i] = inbound.NotificationDTO{
			ID:        n.ID,
			ItemID:    n.ItemID,
			Message:   n.Message,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		}
	}
	return dtos, nil
}

// MarkRead acknowledges one alert.
func (s *Service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		return apperrors.NewDatabase("mark notification read", err)
	}
	return nil
}
