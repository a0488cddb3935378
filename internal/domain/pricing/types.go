package pricing

import (
	"github.com/shopspring/decimal"
)

type Material string

const (
	MaterialWood    Material = "wood"
	MaterialMetal   Material = "metal"
	MaterialPlastic Material = "plastic"
)

var materialDisplayNames = map[Material]string{
	MaterialWood:    "Wood",
	MaterialMetal:   "Metal",
	MaterialPlastic: "Plastic",
}

func (m Material) String() string {
	return string(m)
}

func (m Material) DisplayName() string {
	if name, ok := materialDisplayNames[m]; ok {
		return name
	}
	return string(m)
}

// DimensionSpec is an already validated height/width/material triple in millimetres.
type DimensionSpec struct {
	height   int
	width    int
	material Material
}

// ReconstructDimensionSpec rebuilds a spec from persisted data without validation.
func ReconstructDimensionSpec(height, width int, material Material) DimensionSpec {
	return DimensionSpec{height: height, width: width, material: material}
}

func (s DimensionSpec) Height() int {
	return s.height
}

func (s DimensionSpec) Width() int {
	return s.width
}

func (s DimensionSpec) Material() Material {
	return s.material
}

func (s DimensionSpec) Area() int64 {
	return int64(s.height) * int64(s.width)
}

type Quote struct {
	Area              int64
	Coefficient       decimal.Decimal
	MaterialUnitPrice decimal.Decimal
	TotalPrice        decimal.Decimal
}

// FormatPrice renders a price with exactly two fractional digits.
func FormatPrice(price decimal.Decimal) string {
	return price.StringFixed(2)
}
