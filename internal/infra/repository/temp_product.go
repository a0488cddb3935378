package repository

//go:generate mockgen -source=temp_product.go -destination=../../../tests/mock/repository/temp_product_mock.go -package=repositorymock

import (
	"context"
	"time"

	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/domain/tempproduct"
	"frame-pricing/internal/infra"
	sqlc "frame-pricing/internal/infra/sqlc/generated"
	"frame-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TempProductQueries interface {
	FindActiveTempProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveTempProductParams) (sqlc.TempProducts, error)
	InsertTempProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertTempProductParams) (sqlc.TempProducts, error)
	ListExpiredTempProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredTempProductsParams) ([]sqlc.TempProducts, error)
	MarkTempProductsDeleted(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (int64, error)
	ListShopsWithExpiredTempProducts(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]string, error)
}

type TempProductRepository struct {
	queries TempProductQueries
	db      sqlc.DBTX
}

func NewTempProductRepository(queries TempProductQueries, db sqlc.DBTX) *TempProductRepository {
	return &TempProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TempProductRepository) FindActive(ctx context.Context, shop string, spec pricing.DimensionSpec, now time.Time) (*tempproduct.Record, error) {
	row, err := r.queries.FindActiveTempProduct(ctx, r.db, sqlc.FindActiveTempProductParams{
		Shop:     shop,
		Height:   int32(spec.Height()),
		Width:    int32(spec.Width()),
		Material: spec.Material().String(),
		Now:      pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active temp product", err)
	}
	return toRecord(row)
}

func (r *TempProductRepository) Insert(ctx context.Context, rec tempproduct.NewRecord) (*tempproduct.Record, error) {
	row, err := r.queries.InsertTempProduct(ctx, r.db, sqlc.InsertTempProductParams{
		Shop:      rec.Shop,
		ProductID: rec.ProductID,
		VariantID: rec.VariantID,
		Height:    int32(rec.Spec.Height()),
		Width:     int32(rec.Spec.Width()),
		Material:  rec.Spec.Material().String(),
		Price:     pgconv.DecimalToNumeric(rec.Price),
		CreatedAt: pgconv.TimeToPgtype(rec.CreatedAt),
		DeleteAt:  pgconv.TimeToPgtype(rec.DeleteAt),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert temp product", err)
	}
	return toRecord(row)
}

func (r *TempProductRepository) FindExpired(ctx context.Context, shop string, now time.Time) ([]*tempproduct.Record, error) {
	rows, err := r.queries.ListExpiredTempProducts(ctx, r.db, sqlc.ListExpiredTempProductsParams{
		Now:  pgconv.TimeToPgtype(now),
		Shop: shop,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired temp products", err)
	}

	records := make([]*tempproduct.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := toRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *TempProductRepository) MarkDeleted(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.queries.MarkTempProductsDeleted(ctx, r.db, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark temp products deleted", err)
	}
	return n, nil
}

func (r *TempProductRepository) ExpiredShops(ctx context.Context, now time.Time) ([]string, error) {
	shops, err := r.queries.ListShopsWithExpiredTempProducts(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shops with expired temp products", err)
	}
	return shops, nil
}

func toRecord(row sqlc.TempProducts) (*tempproduct.Record, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid price column", err)
	}
	spec := pricing.ReconstructDimensionSpec(int(row.Height), int(row.Width), pricing.Material(row.Material))
	return tempproduct.ReconstructRecord(
		row.ID,
		row.Shop,
		row.ProductID,
		row.VariantID,
		spec,
		price,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.DeleteAt),
		row.Deleted,
	), nil
}
