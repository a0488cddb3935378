package queries

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing_mock.go -package=queriesmock

import (
	"context"

	"frame-pricing/internal/domain/pricing"
)

// PriceQuoteView is the read model returned by the price calculation endpoints.
type PriceQuoteView struct {
	Height       int
	Width        int
	Material     pricing.Material
	MaterialName string
	Quote        pricing.Quote
}

func (v PriceQuoteView) FormattedPrice() string {
	return pricing.FormatPrice(v.Quote.TotalPrice)
}

type PricingQueries interface {
	Calculate(ctx context.Context, height, width int, material string) (*PriceQuoteView, error)
}

type pricingQueriesImpl struct {
	calc pricing.PriceCalculator
}

func NewPricingQueries(calc pricing.PriceCalculator) PricingQueries {
	return &pricingQueriesImpl{calc: calc}
}

func (q *pricingQueriesImpl) Calculate(_ context.Context, height, width int, material string) (*PriceQuoteView, error) {
	spec, err := q.calc.NewDimensionSpec(height, width, material)
	if err != nil {
		return nil, err
	}
	return &PriceQuoteView{
		Height:       spec.Height(),
		Width:        spec.Width(),
		Material:     spec.Material(),
		MaterialName: spec.Material().DisplayName(),
		Quote:        q.calc.Quote(spec),
	}, nil
}
