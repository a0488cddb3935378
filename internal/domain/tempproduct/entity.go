package tempproduct

import (
	"strings"
	"time"

	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultTTL = 2 * time.Hour

var (
	ErrMissingShop      = errs.New("shop is required")
	ErrMissingProductID = errs.New("remote product id is required")
	ErrMissingVariantID = errs.New("remote variant id is required")
	ErrInvalidTTL       = errs.New("ttl must be positive")
)

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeReused  Outcome = "reused"
)

// Record is the local bookkeeping row for one provisioned remote product.
type Record struct {
	id        uuid.UUID
	shop      string
	productID string
	variantID string
	spec      pricing.DimensionSpec
	price     decimal.Decimal
	createdAt time.Time
	deleteAt  time.Time
	deleted   bool
}

// ReconstructRecord rebuilds a record from persisted data.
func ReconstructRecord(
	id uuid.UUID,
	shop, productID, variantID string,
	spec pricing.DimensionSpec,
	price decimal.Decimal,
	createdAt, deleteAt time.Time,
	deleted bool,
) *Record {
	return &Record{
		id:        id,
		shop:      shop,
		productID: productID,
		variantID: variantID,
		spec:      spec,
		price:     price,
		createdAt: createdAt,
		deleteAt:  deleteAt,
		deleted:   deleted,
	}
}

func (r *Record) ID() uuid.UUID               { return r.id }
func (r *Record) Shop() string                { return r.shop }
func (r *Record) ProductID() string           { return r.productID }
func (r *Record) VariantID() string           { return r.variantID }
func (r *Record) Spec() pricing.DimensionSpec { return r.spec }
func (r *Record) Price() decimal.Decimal      { return r.price }
func (r *Record) CreatedAt() time.Time        { return r.createdAt }
func (r *Record) DeleteAt() time.Time         { return r.deleteAt }
func (r *Record) Deleted() bool               { return r.deleted }

// IsActive reports whether the record may still be reused at now.
func (r *Record) IsActive(now time.Time) bool {
	return !r.deleted && r.deleteAt.After(now)
}

// IsExpired reports whether the sweep should pick the record up at now.
func (r *Record) IsExpired(now time.Time) bool {
	return !r.deleted && !r.deleteAt.After(now)
}

// NewRecord is the insert payload for a freshly created remote product.
type NewRecord struct {
	Shop      string
	ProductID string
	VariantID string
	Spec      pricing.DimensionSpec
	Price     decimal.Decimal
	CreatedAt time.Time
	DeleteAt  time.Time
}

func NewRecordFor(shop, productID, variantID string, spec pricing.DimensionSpec, price decimal.Decimal, now time.Time, ttl time.Duration) (NewRecord, error) {
	if strings.TrimSpace(shop) == "" {
		return NewRecord{}, ErrMissingShop
	}
	if productID == "" {
		return NewRecord{}, ErrMissingProductID
	}
	if variantID == "" {
		return NewRecord{}, ErrMissingVariantID
	}
	if ttl <= 0 {
		return NewRecord{}, ErrInvalidTTL
	}

	return NewRecord{
		Shop:      shop,
		ProductID: productID,
		VariantID: variantID,
		Spec:      spec,
		Price:     price,
		CreatedAt: now,
		DeleteAt:  now.Add(ttl),
	}, nil
}
