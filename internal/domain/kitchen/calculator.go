package kitchen

import "math"

// DeductionInput carries everything the calculator needs for one
// matched pair. Servings and BaseServings come from the request and
// the recipe respectively; the caller substitutes BaseServings for
// Servings when the request omits a serving count, and 1 when the
// recipe omits its own.
type DeductionInput struct {
	RequiredAmount    float64
	RequiredUnit      string
	AvailableQuantity float64
	AvailableUnit     string
	Servings          float64
	BaseServings      float64
}

// Deduction is the calculator's result for one matched ingredient.
type Deduction struct {
	// Remaining is the new quantity to persist, in the inventory
	// item's own unit. Never negative.
	Remaining float64

	// Sufficient is true iff the inventory held enough to cover the
	// scaled requirement without clamping. It stays true when the
	// requirement was unconvertible, since nothing was clamped.
	Sufficient bool

	// Convertible reports whether the required unit could be expressed
	// in the inventory unit. When false no deduction happened and the
	// caller must surface a unit-mismatch warning; silently subtracting
	// raw numbers across mismatched units is exactly the defect this
	// flag exists to prevent.
	Convertible bool

	// Required is the scaled requirement converted into the inventory
	// unit. Zero when Convertible is false.
	Required float64
}

// Deduct computes the remainder after consuming a scaled requirement
// from an available quantity. Pure function.
//
// Contract violations (negative amounts, non-positive serving counts)
// fail fast rather than clamping; the only intentional clamp is the
// final subtraction, which floors at zero. Stored quantities are
// rounded to 2 decimal places.
func Deduct(in DeductionInput) (Deduction, error) {
	if in.RequiredAmount < 0 {
		return Deduction{}, ErrNegativeAmount
	}
	if in.AvailableQuantity < 0 {
		return Deduction{}, ErrNegativeQuantity
	}
	if in.Servings <= 0 || in.BaseServings <= 0 {
		return Deduction{}, ErrInvalidServings
	}

	scale := in.Servings / in.BaseServings
	scaled := in.RequiredAmount * scale

	converted, ok := ConvertUnit(scaled, in.RequiredUnit, in.AvailableUnit)
	if !ok {
		return Deduction{
			Remaining:  round2(in.AvailableQuantity),
			Sufficient: true,
		}, nil
	}

	remaining := in.AvailableQuantity - converted
	if remaining < 0 {
		remaining = 0
	}

	return Deduction{
		Remaining:   round2(remaining),
		Sufficient:  in.AvailableQuantity >= converted,
		Convertible: true,
		Required:    round2(converted),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
