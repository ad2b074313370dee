package cooking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/domain/inventory"
	"github.com/pantrychef/v1/internal/domain/recipe"
	"github.com/pantrychef/v1/internal/ports/inbound"
	"github.com/pantrychef/v1/internal/ports/outbound"
	pkgerrors "github.com/pantrychef/v1/pkg/errors"
)

type fakeRecipeSource struct {
	recipe *recipe.Recipe
	err    error
}

func (f *fakeRecipeSource) Search(ctx context.Context, query string, limit int) ([]recipe.Summary, error) {
	return nil, nil
}

func (f *fakeRecipeSource) FindByID(ctx context.Context, id int64) (*recipe.Recipe, error) {
	return f.recipe, f.err
}

type fakeItemRepo struct {
	items       []*inventory.FoodItem
	applied     []outbound.QuantityUpdate
	applyCalls  int
	applyErr    error
	findErr     error
	appliedUser uuid.UUID
}

func (f *fakeItemRepo) Create(ctx context.Context, item *inventory.FoodItem) error { return nil }
func (f *fakeItemRepo) Update(ctx context.Context, item *inventory.FoodItem) error { return nil }
func (f *fakeItemRepo) Delete(ctx context.Context, userID, id uuid.UUID) error     { return nil }
func (f *fakeItemRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*inventory.FoodItem, error) {
	return nil, inventory.ErrItemNotFound
}
func (f *fakeItemRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*inventory.FoodItem, error) {
	return f.items, f.findErr
}
func (f *fakeItemRepo) FindExpiringBefore(ctx context.Context, cutoff time.Time) ([]*inventory.FoodItem, error) {
	return nil, nil
}
func (f *fakeItemRepo) ApplyDeductions(ctx context.Context, userID uuid.UUID, updates []outbound.QuantityUpdate) error {
	f.applyCalls++
	if f.applyErr != nil {
		return f.applyErr
	}
	f.appliedUser = userID
	f.applied = updates
	return nil
}

func stockItem(t *testing.T, userID uuid.UUID, name string, quantity float64, unit string) *inventory.FoodItem {
	t.Helper()
	item, err := inventory.NewFoodItem(userID, name, "", quantity, unit, nil)
	require.NoError(t, err)
	return item
}

func newService(items outbound.FoodItemRepository, recipes outbound.RecipeSource) inbound.CookingService {
	return NewService(items, recipes, zap.NewNop())
}

func TestConsumeRecipeHappyPath(t *testing.T) {
	userID := uuid.New()
	oil := stockItem(t, userID, "olive oil", 500, "ml")
	garlic := stockItem(t, userID, "garlic", 10, "cloves")

	repo := &fakeItemRepo{items: []*inventory.FoodItem{oil, garlic}}
	source := &fakeRecipeSource{recipe: &recipe.Recipe{
		ID:       42,
		Title:    "Aglio e Olio",
		Servings: 1,
		Ingredients: []recipe.Ingredient{
			{ID: 1, Name: "olive oil", Amount: 30, Unit: "ml"},
			{ID: 2, Name: "garlic", Amount: 20, Unit: "cloves"},
			{ID: 3, Name: "saffron", Amount: 1, Unit: "g"},
		},
	}}

	result, err := newService(repo, source).ConsumeRecipe(context.Background(), inbound.ConsumeRecipeCommand{
		UserID:   userID,
		RecipeID: 42,
	})
	require.NoError(t, err)

	// Olive oil: plain sufficient deduction.
	require.Len(t, result.Updated, 2)
	assert.Equal(t, oil.ID(), result.Updated[0].ItemID)
	assert.Equal(t, 500.0, result.Updated[0].PreviousQuantity)
	assert.Equal(t, 470.0, result.Updated[0].NewQuantity)

	// Garlic: insufficient, clamped to zero, still deducted.
	assert.Equal(t, garlic.ID(), result.Updated[1].ItemID)
	assert.Equal(t, 0.0, result.Updated[1].NewQuantity)

	// Saffron: missing, with amount/unit preserved for the shopping list.
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "saffron", result.Missing[0].Name)
	assert.Equal(t, 1.0, result.Missing[0].Amount)
	assert.Equal(t, "g", result.Missing[0].Unit)

	kinds := make(map[inbound.WarningKind]int)
	for _, w := range result.Warnings {
		kinds[w.Kind]++
	}
	assert.Equal(t, 1, kinds[inbound.WarningMissing])
	assert.Equal(t, 1, kinds[inbound.WarningInsufficient])

	// Persistence got the whole batch at once, scoped to the user.
	assert.Equal(t, 1, repo.applyCalls)
	assert.Equal(t, userID, repo.appliedUser)
	assert.Len(t, repo.applied, 2)
}

func TestConsumeRecipeServingScale(t *testing.T) {
	userID := uuid.New()
	flour := stockItem(t, userID, "flour", 1000, "g")

	repo := &fakeItemRepo{items: []*inventory.FoodItem{flour}}
	source := &fakeRecipeSource{recipe: &recipe.Recipe{
		ID:       7,
		Title:    "Bread",
		Servings: 4,
		Ingredients: []recipe.Ingredient{
			{ID: 1, Name: "flour", Amount: 400, Unit: "g"},
		},
	}}

	result, err := newService(repo, source).ConsumeRecipe(context.Background(), inbound.ConsumeRecipeCommand{
		UserID:   userID,
		RecipeID: 7,
		Servings: 2,
	})
	require.NoError(t, err)

	// Base 4 servings, cooking 2: 400g scales to 200g.
	require.Len(t, result.Updated, 1)
	assert.Equal(t, 800.0, result.Updated[0].NewQuantity)
}

func TestConsumeRecipeUnitMismatch(t *testing.T) {
	userID := uuid.New()
	honey := stockItem(t, userID, "honey", 350, "g")

	repo := &fakeItemRepo{items: []*inventory.FoodItem{honey}}
	source := &fakeRecipeSource{recipe: &recipe.Recipe{
		ID:       9,
		Title:    "Tea",
		Servings: 1,
		Ingredients: []recipe.Ingredient{
			{ID: 1, Name: "honey", Amount: 2, Unit: "tbsp"},
		},
	}}

	result, err := newService(repo, source).ConsumeRecipe(context.Background(), inbound.ConsumeRecipeCommand{
		UserID:   userID,
		RecipeID: 9,
	})
	require.NoError(t, err)

	// Mass vs volume: an explicit warning, never a silent raw subtraction.
	assert.Empty(t, result.Updated)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, inbound.WarningUnitMismatch, result.Warnings[0].Kind)
	assert.Equal(t, "honey", result.Warnings[0].Ingredient)
	assert.Equal(t, 0, repo.applyCalls)
}

func TestConsumeRecipeDuplicateIngredientLines(t *testing.T) {
	userID := uuid.New()
	onion := stockItem(t, userID, "onion", 5, "")

	repo := &fakeItemRepo{items: []*inventory.FoodItem{onion}}
	source := &fakeRecipeSource{recipe: &recipe.Recipe{
		ID:       11,
		Title:    "Soup",
		Servings: 1,
		Ingredients: []recipe.Ingredient{
			{ID: 1, Name: "onion", Amount: 1, Unit: ""},
			{ID: 2, Name: "onion", Amount: 2, Unit: ""},
		},
	}}

	result, err := newService(repo, source).ConsumeRecipe(context.Background(), inbound.ConsumeRecipeCommand{
		UserID:   userID,
		RecipeID: 11,
	})
	require.NoError(t, err)

	// Both lines debit the same item sequentially: 5 - 1 - 2 = 2.
	require.Len(t, result.Updated, 1)
	assert.Equal(t, 5.0, result.Updated[0].PreviousQuantity)
	assert.Equal(t, 2.0, result.Updated[0].NewQuantity)
	require.Len(t, repo.applied, 1)
	assert.Equal(t, 2.0, repo.applied[0].Quantity)
}

func TestConsumeRecipePersistenceFailure(t *testing.T) {
	userID := uuid.New()
	oil := stockItem(t, userID, "olive oil", 500, "ml")

	repo := &fakeItemRepo{
		items:    []*inventory.FoodItem{oil},
		applyErr: errors.New("connection reset"),
	}
	source := &fakeRecipeSource{recipe: &recipe.Recipe{
		ID:       42,
		Title:    "Aglio e Olio",
		Servings: 1,
		Ingredients: []recipe.Ingredient{
			{ID: 1, Name: "olive oil", Amount: 30, Unit: "ml"},
		},
	}}

	_, err := newService(repo, source).ConsumeRecipe(context.Background(), inbound.ConsumeRecipeCommand{
		UserID:   userID,
		RecipeID: 42,
	})

	// The batch failed: the caller gets a single failure, no partial state.
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeDatabaseError))
}

func TestConsumeRecipeNotFound(t *testing.T) {
	repo := &fakeItemRepo{}
	source := &fakeRecipeSource{recipe: nil}

	_, err := newService(repo, source).ConsumeRecipe(context.Background(), inbound.ConsumeRecipeCommand{
		UserID:   uuid.New(),
		RecipeID: 404,
	})

	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeRecipeNotFound))
}

func TestConsumeRecipeMissingUser(t *testing.T) {
	_, err := newService(&fakeItemRepo{}, &fakeRecipeSource{}).ConsumeRecipe(
		context.Background(), inbound.ConsumeRecipeCommand{RecipeID: 1})

	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeBadRequest))
}
