package components

import (
	"frame-pricing/internal/infra/repository"
	"frame-pricing/internal/infra/shopify"
	sqlc "frame-pricing/internal/infra/sqlc/generated"
	"frame-pricing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		// TempProduct
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.TempProductQueries)),
		),
		fx.Annotate(
			repository.NewTempProductRepository,
			fx.As(new(shared.TempProductLedger)),
		),
		// ShopSession
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ShopSessionQueries)),
		),
		fx.Annotate(
			repository.NewShopSessionRepository,
			fx.As(new(shopify.SessionStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
