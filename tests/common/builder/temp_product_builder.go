//go:build unit || e2e

package builder

import (
	"time"

	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/domain/tempproduct"
	reqdto "frame-pricing/internal/handler/dto/request"
	sqlc "frame-pricing/internal/infra/sqlc/generated"
	"frame-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TempProductBuilder struct {
	ID        uuid.UUID
	Shop      string
	ProductID string
	VariantID string
	Height    int
	Width     int
	Material  pricing.Material
	Price     decimal.Decimal
	ImageURL  string
	CreatedAt time.Time
	DeleteAt  time.Time
	Deleted   bool
}

func NewTempProductBuilder() *TempProductBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &TempProductBuilder{
		ID:        uuid.New(),
		Shop:      "test-shop.myshopify.com",
		ProductID: "7001",
		VariantID: "9001",
		Height:    200,
		Width:     300,
		Material:  pricing.MaterialWood,
		Price:     decimal.RequireFromString("56.00"),
		CreatedAt: now,
		DeleteAt:  now.Add(tempproduct.DefaultTTL),
	}
}

func (b *TempProductBuilder) With(mutate func(*TempProductBuilder)) *TempProductBuilder {
	mutate(b)
	return b
}

func (b *TempProductBuilder) Spec() pricing.DimensionSpec {
	return pricing.ReconstructDimensionSpec(b.Height, b.Width, b.Material)
}

// Build methods
func (b *TempProductBuilder) BuildDomain() *tempproduct.Record {
	return tempproduct.ReconstructRecord(
		b.ID, b.Shop, b.ProductID, b.VariantID, b.Spec(), b.Price, b.CreatedAt, b.DeleteAt, b.Deleted,
	)
}

func (b *TempProductBuilder) BuildNewRecord() tempproduct.NewRecord {
	return tempproduct.NewRecord{
		Shop:      b.Shop,
		ProductID: b.ProductID,
		VariantID: b.VariantID,
		Spec:      b.Spec(),
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
		DeleteAt:  b.DeleteAt,
	}
}

func (b *TempProductBuilder) BuildInfra() sqlc.TempProducts {
	return sqlc.TempProducts{
		ID:        b.ID,
		Shop:      b.Shop,
		ProductID: b.ProductID,
		VariantID: b.VariantID,
		Height:    int32(b.Height),
		Width:     int32(b.Width),
		Material:  b.Material.String(),
		Price:     pgconv.DecimalToNumeric(b.Price),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
		DeleteAt:  pgconv.TimeToPgtype(b.DeleteAt),
		Deleted:   b.Deleted,
	}
}

func (b *TempProductBuilder) BuildCreateRequestDTO() reqdto.CreateTempProductRequest {
	return reqdto.CreateTempProductRequest{
		Height:   b.Height,
		Width:    b.Width,
		Material: b.Material.String(),
		ImageURL: b.ImageURL,
	}
}
