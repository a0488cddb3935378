package request

// Range checks are left to the pricing engine so callers get its exact messages.
type CalculatePriceRequest struct {
	Height   int    `json:"height" form:"height"`
	Width    int    `json:"width" form:"width"`
	Material string `json:"material" form:"material"`
}
