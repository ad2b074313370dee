// Package cooking implements the recipe-consumption use case: match a
// recipe's ingredients against the user's pantry, compute deductions,
// and persist them as one atomic batch.
package cooking

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/domain/inventory"
	"github.com/pantrychef/v1/internal/domain/kitchen"
	"github.com/pantrychef/v1/internal/domain/recipe"
	"github.com/pantrychef/v1/internal/ports/inbound"
	"github.com/pantrychef/v1/internal/ports/outbound"
	"github.com/pantrychef/v1/pkg/errors"
)

// slowConsumeThreshold is the soft latency budget for the full
// match+deduct+persist round trip. Exceeding it logs a warning but
// never aborts the request.
const slowConsumeThreshold = time.Second

// Service implements inbound.CookingService.
type Service struct {
	items   outbound.FoodItemRepository
	recipes outbound.RecipeSource
	logger  *zap.Logger
}

// NewService creates the cooking service.
func NewService(
	items outbound.FoodItemRepository,
	recipes outbound.RecipeSource,
	logger *zap.Logger,
) inbound.CookingService {
	return &Service{
		items:   items,
		recipes: recipes,
		logger:  logger.Named("cooking-service"),
	}
}

// ConsumeRecipe runs the full flow. The matcher and calculator are
// pure functions over the snapshots fetched here; all mutation happens
// in a single repository transaction at the end.
func (s *Service) ConsumeRecipe(ctx context.Context, cmd inbound.ConsumeRecipeCommand) (*inbound.ConsumeRecipeResult, error) {
	start := time.Now()

	if cmd.UserID == uuid.Nil {
		return nil, errors.NewBadRequest("user id is required")
	}
	if cmd.Servings < 0 {
		return nil, errors.NewInvalidInput("servings cannot be negative")
	}

	rec, err := s.recipes.FindByID(ctx, cmd.RecipeID)
	if err != nil {
		if stderrors.Is(err, recipe.ErrNotFound) {
			return nil, errors.NewRecipeNotFound(cmd.RecipeID)
		}
		return nil, errors.NewExternalService("recipe API", err)
	}
	if rec == nil {
		return nil, errors.NewRecipeNotFound(cmd.RecipeID)
	}
	if err := rec.Validate(); err != nil {
		return nil, errors.NewInvalidInput(err.Error())
	}

	items, err := s.items.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabase("load inventory", err)
	}

	snapshot := make(map[uuid.UUID]*inventory.FoodItem, len(items))
	stock := make([]kitchen.StockItem, 0, len(items))
	for _, item := range items {
		snapshot[item.ID()] = item
		stock = append(stock, kitchen.StockItem{ID: item.ID(), Name: item.Name()})
	}

	requirements := make([]kitchen.Requirement, 0, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		requirements = append(requirements, kitchen.Requirement{
			ID:       ing.ID,
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Original: ing.Original,
		})
	}

	match := kitchen.Match(requirements, stock)

	baseServings := rec.BaseServings()
	servings := float64(cmd.Servings)
	if cmd.Servings == 0 {
		servings = baseServings
	}

	result := &inbound.ConsumeRecipeResult{
		RecipeID: rec.ID,
		Title:    rec.Title,
		Updated:  make([]inbound.UpdatedItem, 0, len(match.Matched)),
		Missing:  make([]inbound.MissingIngredient, 0, len(match.Missing)),
		Warnings: make([]inbound.Warning, 0),
	}

	for _, miss := range match.Missing {
		result.Missing = append(result.Missing, inbound.MissingIngredient{
			Name:   miss.Name,
			Amount: miss.Amount,
			Unit:   miss.Unit,
		})
		result.Warnings = append(result.Warnings, inbound.Warning{
			Kind:       inbound.WarningMissing,
			Ingredient: miss.Name,
		})
	}

	// Deductions apply sequentially against a working copy of each
	// quantity so duplicate ingredient lines debit the same item twice.
	working := make(map[uuid.UUID]float64, len(snapshot))
	for id, item := range snapshot {
		working[id] = item.Quantity()
	}

	updates := make([]outbound.QuantityUpdate, 0, len(match.Matched))
	touched := make(map[uuid.UUID]int) // item -> index in result.Updated

	for _, m := range match.Matched {
		item := snapshot[m.StockID]

		deduction, err := kitchen.Deduct(kitchen.DeductionInput{
			RequiredAmount:    m.Requirement.Amount,
			RequiredUnit:      m.Requirement.Unit,
			AvailableQuantity: working[m.StockID],
			AvailableUnit:     item.Unit(),
			Servings:          servings,
			BaseServings:      baseServings,
		})
		if err != nil {
			// A contract violation on one ingredient is surfaced as a
			// warning, not a batch failure.
			result.Warnings = append(result.Warnings, inbound.Warning{
				Kind:       inbound.WarningInvalidInput,
				Ingredient: m.Requirement.Name,
				Detail:     err.Error(),
			})
			continue
		}

		if !deduction.Convertible {
			result.Warnings = append(result.Warnings, inbound.Warning{
				Kind:       inbound.WarningUnitMismatch,
				Ingredient: m.Requirement.Name,
				Detail: fmt.Sprintf("cannot convert %q to %q; quantity left untouched",
					m.Requirement.Unit, item.Unit()),
			})
			continue
		}

		if !deduction.Sufficient {
			result.Warnings = append(result.Warnings, inbound.Warning{
				Kind:       inbound.WarningInsufficient,
				Ingredient: m.Requirement.Name,
				Detail: fmt.Sprintf("needed %.2f %s, had %.2f",
					deduction.Required, item.Unit(), working[m.StockID]),
			})
		}

		working[m.StockID] = deduction.Remaining

		if idx, ok := touched[m.StockID]; ok {
			result.Updated[idx].NewQuantity = deduction.Remaining
			for i := range updates {
				if updates[i].ItemID == m.StockID {
					updates[i].Quantity = deduction.Remaining
				}
			}
			continue
		}

		touched[m.StockID] = len(result.Updated)
		result.Updated = append(result.Updated, inbound.UpdatedItem{
			ItemID:           item.ID(),
			Name:             item.Name(),
			PreviousQuantity: item.Quantity(),
			NewQuantity:      deduction.Remaining,
			Unit:             item.Unit(),
		})
		updates = append(updates, outbound.QuantityUpdate{
			ItemID:   m.StockID,
			Quantity: deduction.Remaining,
		})
	}

	if len(updates) > 0 {
		// All-or-nothing: the repository wraps these in one transaction.
		if err := s.items.ApplyDeductions(ctx, cmd.UserID, updates); err != nil {
			return nil, errors.NewDatabase("apply deductions", err)
		}
	}

	result.Elapsed = time.Since(start)
	if result.Elapsed > slowConsumeThreshold {
		s.logger.Warn("Slow recipe consumption",
			zap.Int64("recipe_id", cmd.RecipeID),
			zap.String("user_id", cmd.UserID.String()),
			zap.Duration("elapsed", result.Elapsed),
		)
	}

	s.logger.Info("Recipe consumed",
		zap.Int64("recipe_id", cmd.RecipeID),
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("updated", len(result.Updated)),
		zap.Int("missing", len(result.Missing)),
		zap.Int("warnings", len(result.Warnings)),
	)

	return result, nil
}
