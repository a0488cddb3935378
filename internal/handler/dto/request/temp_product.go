package request

import "frame-pricing/internal/usecase/commands"

type CreateTempProductRequest struct {
	Height   int    `json:"height" form:"height"`
	Width    int    `json:"width" form:"width"`
	Material string `json:"material" form:"material"`
	ImageURL string `json:"image_url" form:"image_url" binding:"omitempty,max=2048"`
	// storefront forms post the camel-cased key
	StorefrontImageURL string `json:"imageUrl,omitempty" form:"imageUrl" binding:"omitempty,max=2048"`
}

// Image returns image_url, falling back to imageUrl.
func (r *CreateTempProductRequest) Image() string {
	if r.ImageURL != "" {
		return r.ImageURL
	}
	return r.StorefrontImageURL
}

func (r *CreateTempProductRequest) ToCommand(shop string) commands.ProvisionRequest {
	return commands.ProvisionRequest{
		Shop:     shop,
		Height:   r.Height,
		Width:    r.Width,
		Material: r.Material,
		ImageURL: r.Image(),
	}
}
