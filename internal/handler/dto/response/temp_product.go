package response

import (
	"time"

	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/usecase/commands"
	"frame-pricing/internal/usecase/shared"
)

type CartPropertyResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CartItemResponse struct {
	ID         string                 `json:"id"`
	Quantity   int                    `json:"quantity"`
	Properties []CartPropertyResponse `json:"properties"`
}

type TempProductResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	VariantID string           `json:"variant_id"`
	Title     string           `json:"title"`
	Price     string           `json:"price"`
	Height    int              `json:"height"`
	Width     int              `json:"width"`
	Material  string           `json:"material"`
	Outcome   string           `json:"outcome"`
	PublicURL string           `json:"public_url,omitempty"`
	DeleteAt  int64            `json:"delete_at"`
	Cart      CartItemResponse `json:"cart"`
}

type CreateTempProductResponse struct {
	Success bool                `json:"success"`
	Product TempProductResponse `json:"product"`
}

func FromProvisionResult(r *commands.ProvisionResult) *CreateTempProductResponse {
	rec := r.Record
	spec := rec.Spec()

	props := make([]CartPropertyResponse, len(r.CartItem.Properties))
	for i, p := range r.CartItem.Properties {
		props[i] = CartPropertyResponse{Key: p.Key, Value: p.Value}
	}

	return &CreateTempProductResponse{
		Success: true,
		Product: TempProductResponse{
			ID:        rec.ID().String(),
			ProductID: rec.ProductID(),
			VariantID: rec.VariantID(),
			Title:     r.Title,
			Price:     pricing.FormatPrice(r.Price),
			Height:    spec.Height(),
			Width:     spec.Width(),
			Material:  spec.Material().DisplayName(),
			Outcome:   string(r.Outcome),
			PublicURL: r.PublicURL,
			DeleteAt:  rec.DeleteAt().Unix(),
			Cart: CartItemResponse{
				ID:         r.CartItem.VariantID,
				Quantity:   r.CartItem.Quantity,
				Properties: props,
			},
		},
	}
}

type CleanupResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Deleted int                    `json:"deleted"`
	Failed  int                    `json:"failed"`
	Errors  []shared.DeleteFailure `json:"errors"`
	Shops   []ShopCleanupResponse  `json:"shops,omitempty"`
	RanAt   int64                  `json:"ran_at"`
}

type ShopCleanupResponse struct {
	Shop    string `json:"shop"`
	Deleted int    `json:"deleted"`
	Failed  int    `json:"failed"`
	Error   string `json:"error,omitempty"`
}

func FromSweepReport(r *commands.SweepReport, now time.Time) *CleanupResponse {
	errs := r.Errors
	if errs == nil {
		errs = []shared.DeleteFailure{}
	}
	return &CleanupResponse{
		Success: true,
		Message: cleanupMessage(r.DeletedCount, r.FailedCount),
		Deleted: r.DeletedCount,
		Failed:  r.FailedCount,
		Errors:  errs,
		RanAt:   now.Unix(),
	}
}

func FromShopSweepReports(reports []commands.ShopSweepReport, now time.Time) *CleanupResponse {
	resp := &CleanupResponse{
		Success: true,
		Errors:  []shared.DeleteFailure{},
		Shops:   make([]ShopCleanupResponse, 0, len(reports)),
		RanAt:   now.Unix(),
	}
	for _, sr := range reports {
		item := ShopCleanupResponse{Shop: sr.Shop}
		if sr.Err != nil {
			item.Error = sr.Err.Error()
		} else if sr.Report != nil {
			item.Deleted = sr.Report.DeletedCount
			item.Failed = sr.Report.FailedCount
			resp.Deleted += sr.Report.DeletedCount
			resp.Failed += sr.Report.FailedCount
			resp.Errors = append(resp.Errors, sr.Report.Errors...)
		}
		resp.Shops = append(resp.Shops, item)
	}
	resp.Message = cleanupMessage(resp.Deleted, resp.Failed)
	return resp
}

func cleanupMessage(deleted, failed int) string {
	if deleted == 0 && failed == 0 {
		return "No expired temporary products"
	}
	return "Temporary product cleanup finished"
}
