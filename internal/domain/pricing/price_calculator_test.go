//go:build unit

package pricing_test

import (
	"testing"

	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalculator() *pricing.DefaultPriceCalculator {
	return pricing.NewDefaultPriceCalculator(pricing.DefaultTable())
}

func TestValidate(t *testing.T) {
	calc := newCalculator()

	testCases := []struct {
		name     string
		height   int
		width    int
		material string
		expected []string
	}{
		{name: "valid lower bounds", height: 100, width: 100, material: "wood"},
		{name: "valid upper bounds", height: 5000, width: 5000, material: "plastic"},
		{
			name: "height below minimum", height: 99, width: 300, material: "metal",
			expected: []string{"Height must be between 100mm and 5000mm"},
		},
		{
			name: "width above maximum", height: 300, width: 5001, material: "metal",
			expected: []string{"Width must be between 100mm and 5000mm"},
		},
		{
			name: "unknown material", height: 300, width: 300, material: "glass",
			expected: []string{"Please select a valid material"},
		},
		{
			name: "every field invalid reports all three in order", height: 50, width: 50, material: "glass",
			expected: []string{
				"Height must be between 100mm and 5000mm",
				"Width must be between 100mm and 5000mm",
				"Please select a valid material",
			},
		},
		{
			name: "material is case sensitive", height: 300, width: 300, material: "Wood",
			expected: []string{"Please select a valid material"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := calc.Validate(tc.height, tc.width, tc.material)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestNewDimensionSpec(t *testing.T) {
	calc := newCalculator()

	t.Run("valid input builds spec", func(t *testing.T) {
		spec, err := calc.NewDimensionSpec(200, 300, "wood")
		require.NoError(t, err)
		assert.Equal(t, 200, spec.Height())
		assert.Equal(t, 300, spec.Width())
		assert.Equal(t, pricing.MaterialWood, spec.Material())
		assert.Equal(t, int64(60000), spec.Area())
	})

	t.Run("invalid input returns joined validation error", func(t *testing.T) {
		_, err := calc.NewDimensionSpec(50, 50, "glass")
		require.Error(t, err)
		require.True(t, errs.Is(err, errs.ErrValidation))

		var vErr *errs.ValidationError
		require.True(t, errs.As(err, &vErr))
		assert.Len(t, vErr.Messages, 3)
		assert.Equal(t,
			"Height must be between 100mm and 5000mm, Width must be between 100mm and 5000mm, Please select a valid material",
			err.Error())
	})
}

func TestCoefficient(t *testing.T) {
	calc := newCalculator()

	testCases := []struct {
		name     string
		height   int
		width    int
		expected string
	}{
		{name: "smallest area", height: 100, width: 100, expected: "1.0"},
		{name: "area 99999 stays in first band", height: 99999, width: 1, expected: "1.0"},
		{name: "area 100000 moves to second band", height: 1000, width: 100, expected: "1.2"},
		{name: "area 199999", height: 199999, width: 1, expected: "1.2"},
		{name: "area 200000", height: 400, width: 500, expected: "1.5"},
		{name: "area 300000", height: 500, width: 600, expected: "2.0"},
		{name: "largest area", height: 5000, width: 5000, expected: "2.0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := calc.Coefficient(tc.height, tc.width)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(actual), "got %s", actual)
		})
	}

	t.Run("monotonically non-decreasing in area", func(t *testing.T) {
		prev := decimal.Zero
		for side := 100; side <= 5000; side += 50 {
			c := calc.Coefficient(side, side)
			assert.True(t, c.GreaterThanOrEqual(prev), "coefficient dropped at side %d", side)
			prev = c
		}
	})

	t.Run("falls back to last band when no band matches", func(t *testing.T) {
		table := pricing.NewTable(
			[]pricing.Band{{Min: 0, Max: 10, Coefficient: decimal.NewFromInt(1)}, {Min: 10, Max: 20, Coefficient: decimal.NewFromInt(3)}},
			map[pricing.Material]decimal.Decimal{pricing.MaterialWood: decimal.NewFromInt(50)},
			pricing.Limits{Min: 1, Max: 100},
			pricing.Limits{Min: 1, Max: 100},
		)
		actual := pricing.NewDefaultPriceCalculator(table).Coefficient(10, 10)
		assert.True(t, decimal.NewFromInt(3).Equal(actual))
	})
}

func TestPrice(t *testing.T) {
	calc := newCalculator()

	testCases := []struct {
		name     string
		height   int
		width    int
		material pricing.Material
		expected string
	}{
		{name: "200x300 wood", height: 200, width: 300, material: pricing.MaterialWood, expected: "56.00"},
		{name: "400x500 metal", height: 400, width: 500, material: pricing.MaterialMetal, expected: "130.00"},
		{name: "600x600 plastic", height: 600, width: 600, material: pricing.MaterialPlastic, expected: "102.00"},
		{name: "1000x1000 wood", height: 1000, width: 1000, material: pricing.MaterialWood, expected: "250.00"},
		{name: "fractional result", height: 101, width: 103, material: pricing.MaterialWood, expected: "51.04"},
		{name: "second band fractional", height: 333, width: 333, material: pricing.MaterialMetal, expected: "113.31"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := calc.Price(tc.height, tc.width, tc.material)
			assert.Equal(t, tc.expected, pricing.FormatPrice(actual))
		})
	}

	t.Run("never below material unit price and repeatable", func(t *testing.T) {
		table := pricing.DefaultTable()
		for _, m := range []pricing.Material{pricing.MaterialWood, pricing.MaterialMetal, pricing.MaterialPlastic} {
			unit, ok := table.UnitPrice(m)
			require.True(t, ok)
			for h := 100; h <= 5000; h += 700 {
				for w := 100; w <= 5000; w += 900 {
					first := calc.Price(h, w, m)
					second := calc.Price(h, w, m)
					assert.True(t, first.GreaterThanOrEqual(unit))
					assert.True(t, first.Equal(second))
				}
			}
		}
	})
}

func TestQuote(t *testing.T) {
	calc := newCalculator()

	spec, err := calc.NewDimensionSpec(400, 500, "metal")
	require.NoError(t, err)

	q := calc.Quote(spec)
	assert.Equal(t, int64(200000), q.Area)
	assert.Equal(t, "1.5", q.Coefficient.String())
	assert.Equal(t, "100.00", pricing.FormatPrice(q.MaterialUnitPrice))
	assert.Equal(t, "130.00", pricing.FormatPrice(q.TotalPrice))
}

func TestMaterialDisplayName(t *testing.T) {
	assert.Equal(t, "Wood", pricing.MaterialWood.DisplayName())
	assert.Equal(t, "Metal", pricing.MaterialMetal.DisplayName())
	assert.Equal(t, "Plastic", pricing.MaterialPlastic.DisplayName())
	assert.Equal(t, "glass", pricing.Material("glass").DisplayName())
}
