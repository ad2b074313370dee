package kitchen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// CalculatorTestSuite exercises the quantity calculator.
type CalculatorTestSuite struct {
	suite.Suite
}

func (suite *CalculatorTestSuite) TestSufficientStock() {
	suite.Run("ExactMatchSufficient", func() {
		// 30ml olive oil from a 500ml bottle.
		d, err := Deduct(DeductionInput{
			RequiredAmount:    30,
			RequiredUnit:      "ml",
			AvailableQuantity: 500,
			AvailableUnit:     "ml",
			Servings:          1,
			BaseServings:      1,
		})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 470.0, d.Remaining)
		assert.True(suite.T(), d.Sufficient)
		assert.True(suite.T(), d.Convertible)
		assert.Equal(suite.T(), 30.0, d.Required)
	})

	suite.Run("CrossUnitWithinCategory", func() {
		// 400g flour from a 1kg bag.
		d, err := Deduct(DeductionInput{
			RequiredAmount:    400,
			RequiredUnit:      "g",
			AvailableQuantity: 1,
			AvailableUnit:     "kg",
			Servings:          1,
			BaseServings:      1,
		})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0.6, d.Remaining)
		assert.True(suite.T(), d.Sufficient)
		assert.Equal(suite.T(), 0.4, d.Required)
	})
}

func (suite *CalculatorTestSuite) TestInsufficientStock() {
	// 20 cloves of garlic but only 10 on hand: clamp to zero and flag.
	// "cloves" is unrecognized, but identical units are always comparable.
	d, err := Deduct(DeductionInput{
		RequiredAmount:    20,
		RequiredUnit:      "cloves",
		AvailableQuantity: 10,
		AvailableUnit:     "cloves",
		Servings:          1,
		BaseServings:      1,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, d.Remaining)
	assert.False(suite.T(), d.Sufficient)
	assert.True(suite.T(), d.Convertible)
}

func (suite *CalculatorTestSuite) TestServingScale() {
	suite.Run("HalfTheServings_HalfTheAmount", func() {
		// Recipe base 4 servings, cooking for 2: 400g becomes 200g.
		d, err := Deduct(DeductionInput{
			RequiredAmount:    400,
			RequiredUnit:      "g",
			AvailableQuantity: 1000,
			AvailableUnit:     "g",
			Servings:          2,
			BaseServings:      4,
		})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 200.0, d.Required)
		assert.Equal(suite.T(), 800.0, d.Remaining)
	})

	suite.Run("ScaleLinearity", func() {
		base := DeductionInput{
			RequiredAmount:    120,
			RequiredUnit:      "ml",
			AvailableQuantity: 1000,
			AvailableUnit:     "ml",
			Servings:          3,
			BaseServings:      3,
		}
		doubled := base
		doubled.Servings = 6

		d1, err := Deduct(base)
		require.NoError(suite.T(), err)
		d2, err := Deduct(doubled)
		require.NoError(suite.T(), err)

		assert.Equal(suite.T(), 2*d1.Required, d2.Required)
		assert.Equal(suite.T(), base.AvailableQuantity-2*d1.Required, d2.Remaining)
	})
}

func (suite *CalculatorTestSuite) TestIncompatibleUnits() {
	suite.Run("MassVersusVolume", func() {
		d, err := Deduct(DeductionInput{
			RequiredAmount:    100,
			RequiredUnit:      "g",
			AvailableQuantity: 500,
			AvailableUnit:     "ml",
			Servings:          1,
			BaseServings:      1,
		})

		// Not an error: no deduction, flagged for the caller to warn on.
		require.NoError(suite.T(), err)
		assert.False(suite.T(), d.Convertible)
		assert.Equal(suite.T(), 500.0, d.Remaining)
		assert.True(suite.T(), d.Sufficient)
		assert.Zero(suite.T(), d.Required)
	})

	suite.Run("MismatchedUnrecognizedUnits", func() {
		d, err := Deduct(DeductionInput{
			RequiredAmount:    2,
			RequiredUnit:      "cloves",
			AvailableQuantity: 3,
			AvailableUnit:     "bulbs",
			Servings:          1,
			BaseServings:      1,
		})

		require.NoError(suite.T(), err)
		assert.False(suite.T(), d.Convertible)
		assert.Equal(suite.T(), 3.0, d.Remaining)
	})

	suite.Run("CountableEmptyUnits", func() {
		d, err := Deduct(DeductionInput{
			RequiredAmount:    2,
			RequiredUnit:      "",
			AvailableQuantity: 6,
			AvailableUnit:     "pcs",
			Servings:          1,
			BaseServings:      1,
		})

		require.NoError(suite.T(), err)
		assert.True(suite.T(), d.Convertible)
		assert.Equal(suite.T(), 4.0, d.Remaining)
	})
}

func (suite *CalculatorTestSuite) TestInvalidInput() {
	cases := []struct {
		name string
		in   DeductionInput
		want error
	}{
		{
			name: "NegativeRequiredAmount",
			in:   DeductionInput{RequiredAmount: -1, AvailableQuantity: 10, Servings: 1, BaseServings: 1},
			want: ErrNegativeAmount,
		},
		{
			name: "NegativeAvailableQuantity",
			in:   DeductionInput{RequiredAmount: 1, AvailableQuantity: -10, Servings: 1, BaseServings: 1},
			want: ErrNegativeQuantity,
		},
		{
			name: "ZeroServings",
			in:   DeductionInput{RequiredAmount: 1, AvailableQuantity: 10, Servings: 0, BaseServings: 1},
			want: ErrInvalidServings,
		},
		{
			name: "NegativeBaseServings",
			in:   DeductionInput{RequiredAmount: 1, AvailableQuantity: 10, Servings: 1, BaseServings: -4},
			want: ErrInvalidServings,
		},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			_, err := Deduct(tc.in)
			assert.ErrorIs(suite.T(), err, tc.want)
		})
	}
}

func (suite *CalculatorTestSuite) TestNonNegativityAndRounding() {
	suite.Run("RemainderNeverNegative", func() {
		d, err := Deduct(DeductionInput{
			RequiredAmount:    2,
			RequiredUnit:      "l",
			AvailableQuantity: 250,
			AvailableUnit:     "ml",
			Servings:          5,
			BaseServings:      1,
		})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0.0, d.Remaining)
		assert.False(suite.T(), d.Sufficient)
	})

	suite.Run("RemainderRoundedToTwoDecimals", func() {
		// 1 tbsp (14.78676... ml) from 100ml.
		d, err := Deduct(DeductionInput{
			RequiredAmount:    1,
			RequiredUnit:      "tbsp",
			AvailableQuantity: 100,
			AvailableUnit:     "ml",
			Servings:          1,
			BaseServings:      1,
		})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 85.21, d.Remaining)
		assert.Equal(suite.T(), 14.79, d.Required)
	})
}

func TestCalculatorTestSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}
