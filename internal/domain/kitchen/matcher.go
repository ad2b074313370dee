// Package kitchen contains the recipe-to-inventory matching and
// quantity-deduction core. Both components are pure functions over
// snapshots passed in by the caller: they never touch ambient state,
// never perform I/O, and are deterministic for a given input pair.
//
// The matcher only resolves WHICH stock item corresponds to a name;
// all quantity arithmetic belongs to the calculator. That split lets
// the matching strategy evolve independently of unit-conversion
// correctness.
package kitchen

import (
	"bytes"
	"strings"

	"github.com/google/uuid"
)

// Requirement is one line item from a recipe: what the dish needs.
// The ID is recipe-scoped, not globally unique. Original carries the
// unparsed source text and is used only for display and logging.
type Requirement struct {
	ID       int
	Name     string
	Amount   float64
	Unit     string
	Original string
}

// StockItem is the slice of a pantry item the matcher needs: identity
// and name. Quantities stay in the caller's inventory snapshot, so a
// match result never carries a stale quantity into the deduction step.
type StockItem struct {
	ID   uuid.UUID
	Name string
}

// MatchedIngredient pairs a recipe requirement with the stock item it
// resolved to.
type MatchedIngredient struct {
	Requirement Requirement
	StockID     uuid.UUID
}

// MatchResult is a total partition of the recipe's requirements: every
// requirement appears in exactly one of the two sequences.
type MatchResult struct {
	Matched []MatchedIngredient
	Missing []Requirement
}

// candidate ranks below exact matches; within partial matches a longer
// shared substring wins, and remaining ties go to the smallest stock ID
// so results never depend on input ordering.
type candidate struct {
	stockID uuid.UUID
	exact   bool
	overlap int
}

func (c candidate) betterThan(o candidate) bool {
	if c.exact != o.exact {
		return c.exact
	}
	if c.overlap != o.overlap {
		return c.overlap > o.overlap
	}
	return bytes.Compare(c.stockID[:], o.stockID[:]) < 0
}

// Match partitions a recipe's requirements into matched and missing
// against a pantry snapshot.
//
// Resolution per requirement: exact normalized-name match first, then
// substring containment in either direction ("fresh basil" finds
// "basil"; "tomato" finds "cherry tomatoes"). Duplicate requirement
// names each resolve independently against the same stock item; the
// matcher does not reserve inventory, sequential deduction does.
func Match(requirements []Requirement, stock []StockItem) MatchResult {
	result := MatchResult{
		Matched: make([]MatchedIngredient, 0, len(requirements)),
		Missing: make([]Requirement, 0),
	}

	type normalizedStock struct {
		id   uuid.UUID
		name string
	}
	normalized := make([]normalizedStock, 0, len(stock))
	for _, item := range stock {
		name := NormalizeName(item.Name)
		if name == "" {
			continue
		}
		normalized = append(normalized, normalizedStock{id: item.ID, name: name})
	}

	for _, req := range requirements {
		name := NormalizeName(req.Name)
		if name == "" {
			result.Missing = append(result.Missing, req)
			continue
		}

		var best *candidate
		for _, item := range normalized {
			c, ok := evaluate(name, item.name)
			if !ok {
				continue
			}
			c.stockID = item.id
			if best == nil || c.betterThan(*best) {
				chosen := c
				best = &chosen
			}
		}

		if best == nil {
			result.Missing = append(result.Missing, req)
			continue
		}
		result.Matched = append(result.Matched, MatchedIngredient{
			Requirement: req,
			StockID:     best.stockID,
		})
	}

	return result
}

// evaluate scores a normalized requirement name against a normalized
// stock name. The overlap of a containment match is the length of the
// contained string, so "cherry tomato" ⊃ "tomato" outranks "oat" ⊂
// "tomato" style accidents of shorter overlap.
func evaluate(reqName, stockName string) (candidate, bool) {
	if reqName == stockName {
		return candidate{exact: true, overlap: len(reqName)}, true
	}
	if contains(stockName, reqName) {
		return candidate{overlap: len(reqName)}, true
	}
	if contains(reqName, stockName) {
		return candidate{overlap: len(stockName)}, true
	}
	return candidate{}, false
}

func contains(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}
