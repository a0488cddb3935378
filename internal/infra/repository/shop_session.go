package repository

//go:generate mockgen -source=shop_session.go -destination=../../../tests/mock/repository/shop_session_mock.go -package=repositorymock

import (
	"context"

	"frame-pricing/internal/infra"
	sqlc "frame-pricing/internal/infra/sqlc/generated"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/pkg/pgconv"
)

type ShopSessionQueries interface {
	GetShopSession(ctx context.Context, db sqlc.DBTX, shop string) (sqlc.ShopSessions, error)
	UpsertShopSession(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertShopSessionParams) error
}

type ShopSession struct {
	Shop        string
	AccessToken string
	Scope       string
}

type ShopSessionRepository struct {
	queries ShopSessionQueries
	db      sqlc.DBTX
}

func NewShopSessionRepository(queries ShopSessionQueries, db sqlc.DBTX) *ShopSessionRepository {
	return &ShopSessionRepository{queries: queries, db: db}
}

// Get returns errs.ErrUnauthorized when the shop never installed the app.
func (r *ShopSessionRepository) Get(ctx context.Context, shop string) (*ShopSession, error) {
	row, err := r.queries.GetShopSession(ctx, r.db, shop)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(errs.Newf("no session stored for %s", shop), errs.ErrUnauthorized)
		}
		return nil, infra.WrapRepoErr("failed to load shop session", err)
	}
	if row.AccessToken == "" {
		return nil, errs.Mark(errs.Newf("empty access token for %s", shop), errs.ErrUnauthorized)
	}
	return &ShopSession{Shop: row.Shop, AccessToken: row.AccessToken, Scope: row.Scope}, nil
}

func (r *ShopSessionRepository) Save(ctx context.Context, s ShopSession) error {
	err := r.queries.UpsertShopSession(ctx, r.db, sqlc.UpsertShopSessionParams{
		Shop:        s.Shop,
		AccessToken: s.AccessToken,
		Scope:       s.Scope,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save shop session", err)
	}
	return nil
}
