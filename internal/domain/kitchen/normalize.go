package kitchen

import (
	"strings"
	"unicode"
)

// NormalizeName canonicalizes an ingredient or pantry item name for
// comparison: lowercase, punctuation replaced by spaces, internal
// whitespace collapsed, and a single trailing "s" stripped from each
// word to absorb trivial plurals ("tomatoes" and "cherry tomatos"
// both reduce to the same stem as "tomato" would contain).
//
// The function is idempotent: applying it to its own output is a no-op.
// Both sides of a match must go through this exact function.
func NormalizeName(name string) string {
	lowered := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = singularize(w)
	}

	return strings.Join(words, " ")
}

// singularize strips one trailing "s" from words long enough for the
// suffix to plausibly be a plural marker. Double-s endings ("swiss",
// "molasses") are left alone, as are short words like "gas".
func singularize(word string) string {
	if len(word) > 3 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") {
		return word[:len(word)-1]
	}
	return word
}

// normalizeUnit canonicalizes a free-text unit string for table lookup
// and same-unit comparison. Unlike names, units keep only a lowercase
// trim plus dot stripping ("tsp." → "tsp"); plural aliases are listed
// in the unit table explicitly.
func normalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.TrimSuffix(u, ".")
	return strings.Join(strings.Fields(u), " ")
}
