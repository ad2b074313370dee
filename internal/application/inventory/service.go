// Package inventory provides the application layer for pantry
// management.
package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/pantrychef/v1/internal/domain/inventory"
	"github.com/pantrychef/v1/internal/ports/inbound"
	"github.com/pantrychef/v1/internal/ports/outbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

// Service implements inbound.InventoryService.
type Service struct {
	repo   outbound.FoodItemRepository
	logger *zap.Logger
}

// NewService creates the inventory service.
func NewService(repo outbound.FoodItemRepository, logger *zap.Logger) inbound.InventoryService {
	return &Service{
		repo:   repo,
		logger: logger.Named("inventory-service"),
	}
}

// List returns all pantry items for a user.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]inbound.FoodItemDTO, error) {
	items, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabase("list food items", err)
	}
	return entitiesToDTOs(items), nil
}

// Get returns one pantry item.
func (s *Service) Get(ctx context.Context, userID, itemID uuid.UUID) (*inbound.FoodItemDTO, error) {
	item, err := s.repo.FindByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, apperrors.NewItemNotFound(itemID.String())
		}
		return nil, apperrors.NewDatabase("find food item", err)
	}
	dto := entityToDTO(item)
	return &dto, nil
}

// Create adds a pantry item.
func (s *Service) Create(ctx context.Context, cmd inbound.CreateFoodItemCommand) (*inbound.FoodItemDTO, error) {
	item, err := domain.NewFoodItem(cmd.UserID, cmd.Name, cmd.Category, cmd.Quantity, cmd.Unit, cmd.BestBefore)
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperrors.NewDatabase("create food item", err)
	}

	s.logger.Info("Food item created",
		zap.String("item_id", item.ID().String()),
		zap.String("user_id", cmd.UserID.String()),
		zap.String("name", item.Name()),
	)

	dto := entityToDTO(item)
	return &dto, nil
}

// Update applies a partial update to a pantry item.
func (s *Service) Update(ctx context.Context, cmd inbound.UpdateFoodItemCommand) (*inbound.FoodItemDTO, error) {
	item, err := s.repo.FindByID(ctx, cmd.UserID, cmd.ItemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, apperrors.NewItemNotFound(cmd.ItemID.String())
		}
		return nil, apperrors.NewDatabase("find food item", err)
	}

	if cmd.Name != nil {
		if err := item.Rename(*cmd.Name); err != nil {
			return nil, apperrors.NewValidation(err.Error())
		}
	}
	if cmd.Quantity != nil {
		if err := item.SetQuantity(*cmd.Quantity); err != nil {
			return nil, apperrors.NewValidation(err.Error())
		}
	}
	if cmd.Category != nil {
		item.SetCategory(*cmd.Category)
	}
	if cmd.Unit != nil {
		item.SetUnit(*cmd.Unit)
	}
	if cmd.BestBefore != nil {
		item.SetBestBefore(cmd.BestBefore)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, apperrors.NewDatabase("update food item", err)
	}

	dto := entityToDTO(item)
	return &dto, nil
}

// Delete removes a pantry item.
func (s *Service) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, itemID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return apperrors.NewItemNotFound(itemID.String())
		}
		return apperrors.NewDatabase("delete food item", err)
	}
	return nil
}

// Expiring returns the user's items whose best-before date falls
// within the window.
func (s *Service) Expiring(ctx context.Context, userID uuid.UUID, within time.Duration) ([]inbound.FoodItemDTO, error) {
	items, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabase("list food items", err)
	}

	now := time.Now()
	expiring := make([]*domain.FoodItem, 0)
	for _, item := range items {
		if item.ExpiresWithin(now, within) {
			expiring = append(expiring, item)
		}
	}
	return entitiesToDTOs(expiring), nil
}

func entityToDTO(item *domain.FoodItem) inbound.FoodItemDTO {
	return inbound.FoodItemDTO{
		ID:         item.ID(),
		Name:       item.Name(),
		Category:   item.Category(),
		Quantity:   item.Quantity(),
		Unit:       item.Unit(),
		BestBefore: item.BestBefore(),
		CreatedAt:  item.CreatedAt(),
		UpdatedAt:  item.UpdatedAt(),
	}
}

func entitiesToDTOs(items []*domain.FoodItem) []inbound.FoodItemDTO {
	dtos := make([]inbound.FoodItemDTO, len(items))
	for i, item := range items {
		dtos[i] = entityToDTO(item)
	}
	return dtos
}
