package response

import (
	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/usecase/queries"
)

type CalculationResponse struct {
	Height        int     `json:"height"`
	Width         int     `json:"width"`
	Material      string  `json:"material"`
	MaterialName  string  `json:"material_name"`
	Area          int64   `json:"area"`
	Coefficient   float64 `json:"coefficient"`
	MaterialPrice string  `json:"material_price"`
	TotalPrice    string  `json:"total_price"`
	Formatted     string  `json:"formatted"`
}

type CalculatePriceResponse struct {
	Success     bool                `json:"success"`
	Calculation CalculationResponse `json:"calculation"`
}

func FromPriceQuoteView(v *queries.PriceQuoteView) *CalculatePriceResponse {
	return &CalculatePriceResponse{
		Success: true,
		Calculation: CalculationResponse{
			Height:        v.Height,
			Width:         v.Width,
			Material:      v.Material.String(),
			MaterialName:  v.MaterialName,
			Area:          v.Quote.Area,
			Coefficient:   v.Quote.Coefficient.InexactFloat64(),
			MaterialPrice: pricing.FormatPrice(v.Quote.MaterialUnitPrice),
			TotalPrice:    pricing.FormatPrice(v.Quote.TotalPrice),
			Formatted:     v.FormattedPrice(),
		},
	}
}
