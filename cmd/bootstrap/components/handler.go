package components

import (
	"frame-pricing/internal/handler"
	"frame-pricing/internal/handler/api"
	"frame-pricing/internal/handler/middleware"
	"frame-pricing/internal/pkg/config"
	"frame-pricing/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewTempProductHandler,
		api.NewCleanupHandler,
		func(cfg config.Config, tokens *jwt.Service) *middleware.ShopAuthMiddleware {
			return middleware.NewShopAuthMiddleware(cfg.Shopify.APISecret, tokens)
		},
	),
	fx.Invoke(handler.NewRouter),
)
