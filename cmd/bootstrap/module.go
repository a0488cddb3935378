package bootstrap

import (
	"frame-pricing/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	ShopifyModule,
	SchedulerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
