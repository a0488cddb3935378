package bootstrap

import (
	"frame-pricing/internal/pkg/config"
	"frame-pricing/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// Session tokens are signed with the app secret and addressed to the app's API key.
func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Shopify.APISecret, cfg.Shopify.APIKey)
}
