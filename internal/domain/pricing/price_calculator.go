package pricing

import (
	"fmt"

	"frame-pricing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var areaDivisor = decimal.NewFromInt(10000)

type PriceCalculator interface {
	Validate(height, width int, material string) []string
	NewDimensionSpec(height, width int, material string) (DimensionSpec, error)
	Coefficient(height, width int) decimal.Decimal
	Price(height, width int, material Material) decimal.Decimal
	Quote(spec DimensionSpec) Quote
}

type DefaultPriceCalculator struct {
	table Table
}

func NewDefaultPriceCalculator(table Table) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{table: table}
}

// Validate runs every rule without short-circuiting: height, width, then material.
func (pc *DefaultPriceCalculator) Validate(height, width int, material string) []string {
	var messages []string

	if h := pc.table.HeightLimit(); !h.Contains(height) {
		messages = append(messages, fmt.Sprintf("Height must be between %dmm and %dmm", h.Min, h.Max))
	}

	if w := pc.table.WidthLimit(); !w.Contains(width) {
		messages = append(messages, fmt.Sprintf("Width must be between %dmm and %dmm", w.Min, w.Max))
	}

	if _, ok := pc.table.UnitPrice(Material(material)); !ok {
		messages = append(messages, "Please select a valid material")
	}

	return messages
}

func (pc *DefaultPriceCalculator) NewDimensionSpec(height, width int, material string) (DimensionSpec, error) {
	if messages := pc.Validate(height, width, material); len(messages) > 0 {
		return DimensionSpec{}, errs.NewValidationError(messages)
	}
	return DimensionSpec{height: height, width: width, material: Material(material)}, nil
}

func (pc *DefaultPriceCalculator) Coefficient(height, width int) decimal.Decimal {
	area := int64(height) * int64(width)
	bands := pc.table.bands
	for _, b := range bands {
		if b.Contains(area) {
			return b.Coefficient
		}
	}
	if len(bands) == 0 {
		return decimal.NewFromInt(1)
	}
	return bands[len(bands)-1].Coefficient
}

// Price is round2(area × coefficient / 10000 + unit price). Callers validate first.
func (pc *DefaultPriceCalculator) Price(height, width int, material Material) decimal.Decimal {
	area := decimal.NewFromInt(int64(height) * int64(width))
	unit, _ := pc.table.UnitPrice(material)

	return area.
		Mul(pc.Coefficient(height, width)).
		Div(areaDivisor).
		Add(unit).
		Round(2)
}

func (pc *DefaultPriceCalculator) Quote(spec DimensionSpec) Quote {
	unit, _ := pc.table.UnitPrice(spec.Material())
	return Quote{
		Area:              spec.Area(),
		Coefficient:       pc.Coefficient(spec.Height(), spec.Width()),
		MaterialUnitPrice: unit,
		TotalPrice:        pc.Price(spec.Height(), spec.Width(), spec.Material()),
	}
}
