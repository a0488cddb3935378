package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"
	"encoding/json"
	"time"

	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/domain/tempproduct"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdminRequest is one GraphQL document plus its variables.
type AdminRequest struct {
	Query     string
	Variables map[string]any
}

type GraphQLError struct {
	Message string `json:"message"`
}

type AdminResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// AdminAPI executes GraphQL operations against one shop's admin API.
type AdminAPI interface {
	Execute(ctx context.Context, req AdminRequest) (*AdminResponse, error)
}

// Session is the per-request capability to act on behalf of a shop.
type Session struct {
	Shop  string
	Admin AdminAPI
}

type SessionProvider interface {
	// ForShop returns errs.ErrUnauthorized when the shop has no usable session.
	ForShop(ctx context.Context, shop string) (*Session, error)
}

type TempProductLedger interface {
	FindActive(ctx context.Context, shop string, spec pricing.DimensionSpec, now time.Time) (*tempproduct.Record, error)
	Insert(ctx context.Context, rec tempproduct.NewRecord) (*tempproduct.Record, error)
	// FindExpired treats an empty shop as every shop.
	FindExpired(ctx context.Context, shop string, now time.Time) ([]*tempproduct.Record, error)
	MarkDeleted(ctx context.Context, ids []uuid.UUID) (int64, error)
	ExpiredShops(ctx context.Context, now time.Time) ([]string, error)
}

type CreateProductInput struct {
	Spec            pricing.DimensionSpec
	Price           decimal.Decimal
	Title           string
	DescriptionHTML string
	ImageURL        string
}

type RemoteProduct struct {
	ProductID string
	VariantID string
	Title     string
	Handle    string
	PublicURL string
}

type DeleteFailure struct {
	ID      string `json:"id"`
	Message string `json:"error"`
}

// BulkDeleteResult partitions the requested ids; every id lands in exactly one list.
type BulkDeleteResult struct {
	Succeeded []string
	Failed    []DeleteFailure
}

type ProductGateway interface {
	CreateProduct(ctx context.Context, admin AdminAPI, in CreateProductInput) (*RemoteProduct, error)
	DeleteProduct(ctx context.Context, admin AdminAPI, productID string) (string, error)
	BulkDelete(ctx context.Context, admin AdminAPI, productIDs []string) BulkDeleteResult
}

// SweepLocker guards a sweep across processes. A false return means another
// holder owns the key.
type SweepLocker interface {
	TryLock(ctx context.Context, key string) (release func(context.Context), acquired bool, err error)
}
