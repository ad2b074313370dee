// Package recipeapi implements the recipe source port against the
// Spoonacular-compatible HTTP API.
package recipeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/domain/recipe"
	"github.com/pantrychef/v1/internal/infrastructure/config"
	"github.com/pantrychef/v1/internal/ports/outbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

// Client implements outbound.RecipeSource.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a recipe API client.
func NewClient(cfg config.RecipeAPIConfig, logger *zap.Logger) outbound.RecipeSource {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("recipe-api"),
	}
}

type searchResponse struct {
	Results []struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
		Image string `json:"image"`
	} `json:"results"`
	TotalResults int `json:"totalResults"`
}

type informationResponse struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	Servings            int    `json:"servings"`
	ReadyInMinutes      int    `json:"readyInMinutes"`
	Image               string `json:"image"`
	SourceURL           string `json:"sourceUrl"`
	ExtendedIngredients []struct {
		ID       int     `json:"id"`
		Name     string  `json:"name"`
		Amount   float64 `json:"amount"`
		Unit     string  `json:"unit"`
		Original string  `json:"original"`
	} `json:"extendedIngredients"`
}

// Search queries the recipe API by free-text title.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]recipe.Summary, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("number", strconv.Itoa(limit))

	var resp searchResponse
	if err := c.get(ctx, "/recipes/complexSearch", params, &resp); err != nil {
		return nil, err
	}

	summaries := make([]recipe.Summary, 0, len(resp.Results))
	for _, r := range resp.Results {
		summaries = append(summaries, recipe.Summary{
			ID:       r.ID,
			Title:    r.Title,
			ImageURL: r.Image,
		})
	}

	c.logger.Debug("Recipe search completed",
		zap.String("query", query),
		zap.Int("results", len(summaries)),
	)
	return summaries, nil
}

// FindByID fetches the full recipe, including the ingredient lines the
// consumption flow deducts from the pantry.
func (c *Client) FindByID(ctx context.Context, id int64) (*recipe.Recipe, error) {
	path := fmt.Sprintf("/recipes/%d/information", id)
	params := url.Values{}
	params.Set("includeNutrition", "false")

	var resp informationResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		if apperrors.GetCode(err) == apperrors.CodeRecipeNotFound {
			return nil, recipe.ErrNotFound
		}
		return nil, err
	}

	ingredients := make([]recipe.Ingredient, 0, len(resp.ExtendedIngredients))
	for _, ing := range resp.ExtendedIngredients {
		ingredients = append(ingredients, recipe.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Original: ing.Original,
		})
	}

	return &recipe.Recipe{
		ID:          resp.ID,
		Title:       resp.Title,
		Servings:    resp.Servings,
		ReadyInMin:  resp.ReadyInMinutes,
		ImageURL:    resp.Image,
		SourceURL:   resp.SourceURL,
		Ingredients: ingredients,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("apiKey", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.NewExternalService("recipe API", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Recipe API request failed", zap.String("path", path), zap.Error(err))
		return apperrors.NewExternalService("recipe API", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.New(apperrors.CodeRecipeNotFound, "Recipe not found", "")
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn("Recipe API returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return apperrors.NewExternalService("recipe API",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewExternalService("recipe API", err)
	}
	return nil
}
