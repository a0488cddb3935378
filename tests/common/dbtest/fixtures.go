//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	TestShop        = "test-shop.myshopify.com"
	TestAccessToken = "shpat_e2e_token"
)

// InsertTempProduct writes a ledger row directly, bypassing the remote catalog.
func InsertTempProduct(t *testing.T, db DBLike, shop, productID string, height, width int, material string, createdAt, deleteAt time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO temp_products (shop, product_id, variant_id, height, width, material, price, created_at, delete_at)
		VALUES ($1, $2, $3, $4, $5, $6, 56.00, $7, $8)
		RETURNING id`,
		shop, productID, "v"+productID, height, width, material, createdAt, deleteAt,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func IsTempProductDeleted(t *testing.T, db DBLike, id uuid.UUID) bool {
	t.Helper()

	var deleted bool
	err := db.QueryRow(context.Background(), "SELECT deleted FROM temp_products WHERE id = $1", id).Scan(&deleted)
	require.NoError(t, err)
	return deleted
}

func CountTempProducts(t *testing.T, db DBLike, shop string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM temp_products WHERE shop = $1", shop).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO shop_sessions (shop, access_token, scope) VALUES
		    ($1, $2, 'write_products,write_publications')
		ON CONFLICT (shop) DO UPDATE SET access_token = EXCLUDED.access_token;
	`, TestShop, TestAccessToken)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
