package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

const Unbounded int64 = math.MaxInt64

// Band is a half-open area range [Min, Max) in mm² with its price coefficient.
type Band struct {
	Min         int64
	Max         int64
	Coefficient decimal.Decimal
}

func (b Band) Contains(area int64) bool {
	return area >= b.Min && area < b.Max
}

type Limits struct {
	Min int
	Max int
}

func (l Limits) Contains(v int) bool {
	return v >= l.Min && v <= l.Max
}

// Table is the immutable pricing configuration. Construct with NewTable or DefaultTable.
type Table struct {
	bands       []Band
	unitPrices  map[Material]decimal.Decimal
	heightLimit Limits
	widthLimit  Limits
}

func NewTable(bands []Band, unitPrices map[Material]decimal.Decimal, height, width Limits) Table {
	b := make([]Band, len(bands))
	copy(b, bands)
	p := make(map[Material]decimal.Decimal, len(unitPrices))
	for k, v := range unitPrices {
		p[k] = v
	}
	return Table{bands: b, unitPrices: p, heightLimit: height, widthLimit: width}
}

func DefaultTable() Table {
	return NewTable(
		[]Band{
			{Min: 0, Max: 100000, Coefficient: decimal.RequireFromString("1.0")},
			{Min: 100000, Max: 200000, Coefficient: decimal.RequireFromString("1.2")},
			{Min: 200000, Max: 300000, Coefficient: decimal.RequireFromString("1.5")},
			{Min: 300000, Max: Unbounded, Coefficient: decimal.RequireFromString("2.0")},
		},
		map[Material]decimal.Decimal{
			MaterialWood:    decimal.NewFromInt(50),
			MaterialMetal:   decimal.NewFromInt(100),
			MaterialPlastic: decimal.NewFromInt(30),
		},
		Limits{Min: 100, Max: 5000},
		Limits{Min: 100, Max: 5000},
	)
}

func (t Table) Bands() []Band {
	out := make([]Band, len(t.bands))
	copy(out, t.bands)
	return out
}

func (t Table) UnitPrice(m Material) (decimal.Decimal, bool) {
	p, ok := t.unitPrices[m]
	return p, ok
}

func (t Table) HeightLimit() Limits {
	return t.heightLimit
}

func (t Table) WidthLimit() Limits {
	return t.widthLimit
}
