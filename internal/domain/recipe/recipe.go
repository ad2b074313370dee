// Package recipe holds the in-process projection of recipes fetched
// from the third-party recipe API. Recipes are not persisted here;
// each request works on a freshly fetched value, so the types are
// plain data with validation helpers rather than a rich aggregate.
package recipe

import "errors"

// Ingredient is one line item of a recipe as the source API reports
// it: a free-text name and unit, a non-negative amount, and the raw
// source text for display and logging.
type Ingredient struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Original string  `json:"original"`
}

// Recipe is the projection the consumption flow needs: identity,
// ingredient list and the serving count the amounts are calibrated to.
type Recipe struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Servings    int          `json:"servings"`
	ReadyInMin  int          `json:"readyInMinutes"`
	ImageURL    string       `json:"image"`
	SourceURL   string       `json:"sourceUrl"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Summary is the search-result shape.
type Summary struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image"`
}

var ErrNotFound = errors.New("recipe not found")

// BaseServings returns the serving count deduction amounts are scaled
// against. Sources occasionally omit or zero the field; the baseline
// defaults to 1 so a missing value never poisons the scale factor.
func (r *Recipe) BaseServings() float64 {
	if r.Servings <= 0 {
		return 1
	}
	return float64(r.Servings)
}

// Validate rejects recipes the consumption flow cannot work with.
func (r *Recipe) Validate() error {
	if r.ID == 0 {
		return errors.New("recipe id is required")
	}
	for _, ing := range r.Ingredients {
		if ing.Amount < 0 {
			return errors.New("ingredient amounts cannot be negative")
		}
	}
	return nil
}
