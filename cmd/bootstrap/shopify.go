package bootstrap

import (
	"frame-pricing/internal/infra/shopify"
	"frame-pricing/internal/pkg/config"
	"frame-pricing/internal/usecase/shared"

	"go.uber.org/fx"
)

var ShopifyModule = fx.Module("shopify",
	fx.Provide(
		NewClientFactory,
		fx.Annotate(
			shopify.NewGateway,
			fx.As(new(shared.ProductGateway)),
		),
		fx.Annotate(
			shopify.NewSessionProvider,
			fx.As(new(shared.SessionProvider)),
		),
	),
)

func NewClientFactory(cfg config.Config) *shopify.ClientFactory {
	return shopify.NewClientFactory(cfg.Shopify)
}
