package components

import (
	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/pkg/clock"
	"frame-pricing/internal/pkg/config"
	"frame-pricing/internal/usecase/commands"
	"frame-pricing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	pricing.DefaultTable,
	fx.Annotate(
		pricing.NewDefaultPriceCalculator,
		fx.As(new(pricing.PriceCalculator)),
	),
	func(cfg config.Config) commands.Options {
		return commands.Options{TTL: cfg.TempProduct.TTL}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTempProductUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
	),
)
