package kitchen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, UnitKindMass, KindOf("kg"))
	assert.Equal(t, UnitKindMass, KindOf(" Grams "))
	assert.Equal(t, UnitKindVolume, KindOf("tbsp."))
	assert.Equal(t, UnitKindVolume, KindOf("FL OZ"))
	assert.Equal(t, UnitKindCount, KindOf(""))
	assert.Equal(t, UnitKindCount, KindOf("pieces"))
	assert.Equal(t, UnitKindUnknown, KindOf("cloves"))
}

func TestConvertUnit(t *testing.T) {
	cases := []struct {
		amount   float64
		from, to string
		want     float64
		ok       bool
	}{
		{1, "kg", "g", 1000, true},
		{250, "g", "kg", 0.25, true},
		{2, "l", "ml", 2000, true},
		{1, "cup", "ml", 236.5882365, true},
		{3, "cloves", "cloves", 3, true}, // identical strings always comparable
		{1, "g", "ml", 0, false},
		{1, "cloves", "bulbs", 0, false},
		{2, "", "pcs", 2, true},
	}

	for _, tc := range cases {
		got, ok := ConvertUnit(tc.amount, tc.from, tc.to)
		assert.Equal(t, tc.ok, ok, "%s -> %s", tc.from, tc.to)
		if tc.ok {
			assert.InDelta(t, tc.want, got, 1e-9, "%s -> %s", tc.from, tc.to)
		}
	}
}
