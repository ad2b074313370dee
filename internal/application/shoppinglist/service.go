// Package shoppinglist provides the application layer for shopping
// list management, including bulk import of missing ingredients from a
// consume-recipe result.
package shoppinglist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/pantrychef/v1/internal/domain/shoppinglist"
	"github.com/pantrychef/v1/internal/ports/inbound"
	"github.com/pantrychef/v1/internal/ports/outbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

// Service implements inbound.ShoppingListService.
type Service struct {
	repo   outbound.ShoppingListRepository
	logger *zap.Logger
}

// NewService creates the shopping list service.
func NewService(repo outbound.ShoppingListRepository, logger *zap.Logger) inbound.ShoppingListService {
	return &Service{
		repo:   repo,
		logger: logger.Named("shoppinglist-service"),
	}
}

// List returns the user's shopping list.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]inbound.ShoppingItemDTO, error) {
	items, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabase("list shopping items", err)
	}
	return itemsToDTOs(items), nil
}

// Add appends one entry.
func (s *Service) Add(ctx context.Context, cmd inbound.AddShoppingItemCommand) (*inbound.ShoppingItemDTO, error) {
	item, err := domain.NewItem(cmd.UserID, cmd.Name, cmd.Amount, cmd.Unit)
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperrors.NewDatabase("create shopping item", err)
	}
	dto := itemToDTO(item)
	return &dto, nil
}

// AddMissing bulk-adds the missing ingredients of a consume result,
// preserving requested amounts and units.
func (s *Service) AddMissing(ctx context.Context, userID uuid.UUID, missing []inbound.MissingIngredient) ([]inbound.ShoppingItemDTO, error) {
	items := make([]*domain.Item, 0, len(missing))
	for _, m := range missing {
		item, err := domain.NewItem(userID, m.Name, m.Amount, m.Unit)
		if err != nil {
			return nil, apperrors.NewValidation(err.Error())
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return []inbound.ShoppingItemDTO{}, nil
	}

	if err := s.repo.CreateBatch(ctx, items); err != nil {
		return nil, apperrors.NewDatabase("create shopping items", err)
	}

	s.logger.Info("Missing ingredients added to shopping list",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(items)),
	)

	return itemsToDTOs(items), nil
}

// Toggle flips the checked-off state of one entry.
func (s *Service) Toggle(ctx context.Context, userID, itemID uuid.UUID) (*inbound.ShoppingItemDTO, error) {
	item, err := s.repo.FindByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, apperrors.NewNotFound("Shopping list entry")
		}
		return nil, apperrors.NewDatabase("find shopping item", err)
	}

	item.Toggle()
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, apperrors.NewDatabase("update shopping item", err)
	}

	dto := itemToDTO(item)
	return &dto, nil
}

// Delete removes one entry.
func (s *Service) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, itemID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return apperrors.NewNotFound("Shopping list entry")
		}
		return apperrors.NewDatabase("delete shopping item", err)
	}
	return nil
}

func itemToDTO(item *domain.Item) inbound.ShoppingItemDTO {
	return inbound.ShoppingItemDTO{
		ID:        item.ID,
		Name:      item.Name,
		Amount:    item.Amount,
		Unit:      item.Unit,
		Checked:   item.Checked,
		CreatedAt: item.CreatedAt,
	}
}

func itemsToDTOs(items []*domain.Item) []inbound.ShoppingItemDTO {
	dtos := make([]inbound.ShoppingItemDTO, len(items))
	for i, item := range items {
		dtos[i] = itemToDTO(item)
	}
	return dtos
}
