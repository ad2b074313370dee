package kitchen

// UnitKind tags a recognized measurement category. Keeping the category
// explicit (instead of comparing unit strings throughout the logic)
// makes the conversion table exhaustive and testable.
type UnitKind string

const (
	UnitKindMass    UnitKind = "mass"
	UnitKindVolume  UnitKind = "volume"
	UnitKindCount   UnitKind = "count"
	UnitKindUnknown UnitKind = "unknown"
)

type unitDef struct {
	kind   UnitKind
	toBase float64 // factor to the category base unit (g, ml, or 1)
}

// unitTable maps normalized unit strings to their category and base
// factor. Mass base is the gram, volume base is the milliliter.
// US customary volumes use the NIST definitions.
var unitTable = map[string]unitDef{
	// mass
	"mg":        {kind: UnitKindMass, toBase: 0.001},
	"g":         {kind: UnitKindMass, toBase: 1},
	"gram":      {kind: UnitKindMass, toBase: 1},
	"grams":     {kind: UnitKindMass, toBase: 1},
	"kg":        {kind: UnitKindMass, toBase: 1000},
	"kilogram":  {kind: UnitKindMass, toBase: 1000},
	"kilograms": {kind: UnitKindMass, toBase: 1000},
	"oz":        {kind: UnitKindMass, toBase: 28.349523125},
	"ounce":     {kind: UnitKindMass, toBase: 28.349523125},
	"ounces":    {kind: UnitKindMass, toBase: 28.349523125},
	"lb":        {kind: UnitKindMass, toBase: 453.59237},
	"lbs":       {kind: UnitKindMass, toBase: 453.59237},
	"pound":     {kind: UnitKindMass, toBase: 453.59237},
	"pounds":    {kind: UnitKindMass, toBase: 453.59237},

	// volume
	"ml":          {kind: UnitKindVolume, toBase: 1},
	"milliliter":  {kind: UnitKindVolume, toBase: 1},
	"milliliters": {kind: UnitKindVolume, toBase: 1},
	"cl":          {kind: UnitKindVolume, toBase: 10},
	"dl":          {kind: UnitKindVolume, toBase: 100},
	"l":           {kind: UnitKindVolume, toBase: 1000},
	"liter":       {kind: UnitKindVolume, toBase: 1000},
	"liters":      {kind: UnitKindVolume, toBase: 1000},
	"tsp":         {kind: UnitKindVolume, toBase: 4.92892159375},
	"teaspoon":    {kind: UnitKindVolume, toBase: 4.92892159375},
	"teaspoons":   {kind: UnitKindVolume, toBase: 4.92892159375},
	"tbsp":        {kind: UnitKindVolume, toBase: 14.78676478125},
	"tablespoon":  {kind: UnitKindVolume, toBase: 14.78676478125},
	"tablespoons": {kind: UnitKindVolume, toBase: 14.78676478125},
	"cup":         {kind: UnitKindVolume, toBase: 236.5882365},
	"cups":        {kind: UnitKindVolume, toBase: 236.5882365},
	"fl oz":       {kind: UnitKindVolume, toBase: 29.5735295625},

	// count; an empty unit means "whole items"
	"":       {kind: UnitKindCount, toBase: 1},
	"piece":  {kind: UnitKindCount, toBase: 1},
	"pieces": {kind: UnitKindCount, toBase: 1},
	"pcs":    {kind: UnitKindCount, toBase: 1},
	"pc":     {kind: UnitKindCount, toBase: 1},
	"stk":    {kind: UnitKindCount, toBase: 1},
}

// KindOf reports the measurement category of a free-text unit string.
func KindOf(unit string) UnitKind {
	if def, ok := unitTable[normalizeUnit(unit)]; ok {
		return def.kind
	}
	return UnitKindUnknown
}

// ConvertUnit converts an amount between two free-text unit strings.
// It succeeds when the units normalize to the same string (a "cloves"
// requirement against a "cloves" stock is comparable even though the
// unit itself is unrecognized), or when both units are recognized and
// belong to the same category. It reports false for everything else;
// callers must treat that as an unconvertible requirement, never as a
// raw cross-unit subtraction.
func ConvertUnit(amount float64, fromUnit, toUnit string) (float64, bool) {
	from := normalizeUnit(fromUnit)
	to := normalizeUnit(toUnit)

	if from == to {
		return amount, true
	}

	fromDef, okFrom := unitTable[from]
	toDef, okTo := unitTable[to]
	if !okFrom || !okTo || fromDef.kind != toDef.kind {
		return 0, false
	}

	return amount * fromDef.toBase / toDef.toBase, true
}
