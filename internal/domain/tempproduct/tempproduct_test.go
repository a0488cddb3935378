//go:build unit

package tempproduct_test

import (
	"testing"
	"time"

	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/domain/tempproduct"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	woodSpec = pricing.ReconstructDimensionSpec(200, 300, pricing.MaterialWood)
)

func TestNewRecordFor(t *testing.T) {
	price := decimal.RequireFromString("56.00")

	t.Run("success: delete_at is now plus ttl", func(t *testing.T) {
		rec, err := tempproduct.NewRecordFor("shop.myshopify.com", "7001", "9001", woodSpec, price, baseTime, 2*time.Hour)

		require.NoError(t, err)
		assert.Equal(t, baseTime, rec.CreatedAt)
		assert.Equal(t, baseTime.Add(2*time.Hour), rec.DeleteAt)
		assert.True(t, rec.DeleteAt.After(rec.CreatedAt))
	})

	testCases := []struct {
		name      string
		shop      string
		productID string
		variantID string
		ttl       time.Duration
		expected  error
	}{
		{name: "blank shop", shop: "  ", productID: "1", variantID: "2", ttl: time.Hour, expected: tempproduct.ErrMissingShop},
		{name: "missing product id", shop: "s", variantID: "2", ttl: time.Hour, expected: tempproduct.ErrMissingProductID},
		{name: "missing variant id", shop: "s", productID: "1", ttl: time.Hour, expected: tempproduct.ErrMissingVariantID},
		{name: "zero ttl", shop: "s", productID: "1", variantID: "2", expected: tempproduct.ErrInvalidTTL},
		{name: "negative ttl", shop: "s", productID: "1", variantID: "2", ttl: -time.Minute, expected: tempproduct.ErrInvalidTTL},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			_, err := tempproduct.NewRecordFor(tc.shop, tc.productID, tc.variantID, woodSpec, price, baseTime, tc.ttl)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestRecordLifecycle(t *testing.T) {
	deleteAt := baseTime.Add(tempproduct.DefaultTTL)
	rec := tempproduct.ReconstructRecord(uuid.New(), "s", "1", "2", woodSpec, decimal.NewFromInt(56), baseTime, deleteAt, false)
	deleted := tempproduct.ReconstructRecord(uuid.New(), "s", "1", "2", woodSpec, decimal.NewFromInt(56), baseTime, deleteAt, true)

	testCases := []struct {
		name          string
		rec           *tempproduct.Record
		at            time.Time
		expectActive  bool
		expectExpired bool
	}{
		{name: "fresh record", rec: rec, at: baseTime, expectActive: true},
		{name: "one second before expiry", rec: rec, at: deleteAt.Add(-time.Second), expectActive: true},
		{name: "exactly at delete_at", rec: rec, at: deleteAt, expectExpired: true},
		{name: "after delete_at", rec: rec, at: deleteAt.Add(time.Hour), expectExpired: true},
		{name: "deleted before expiry", rec: deleted, at: baseTime},
		{name: "deleted after expiry", rec: deleted, at: deleteAt.Add(time.Hour)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectActive, tc.rec.IsActive(tc.at))
			assert.Equal(t, tc.expectExpired, tc.rec.IsExpired(tc.at))
		})
	}
}

func TestProductContent(t *testing.T) {
	t.Run("title", func(t *testing.T) {
		assert.Equal(t, "Custom Frame 200×300mm - Wood", tempproduct.Title(woodSpec))
	})

	t.Run("description lists dimensions and price", func(t *testing.T) {
		desc := tempproduct.DescriptionHTML(woodSpec, decimal.RequireFromString("56"))
		assert.Contains(t, desc, "<li>Height: 200mm</li>")
		assert.Contains(t, desc, "<li>Width: 300mm</li>")
		assert.Contains(t, desc, "<li>Material: Wood</li>")
		assert.Contains(t, desc, "<li>Price: 56.00</li>")
	})

	t.Run("tags mark the product for cleanup", func(t *testing.T) {
		tags := tempproduct.Tags(pricing.MaterialMetal)
		assert.Equal(t, []string{"temp-product", "auto-delete", "material-metal"}, tags)
	})
}

func TestNormalizeImageURL(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{raw: "https://cdn.example.com/a.png", expected: "https://cdn.example.com/a.png", ok: true},
		{raw: "http://cdn.example.com/a.png", expected: "http://cdn.example.com/a.png", ok: true},
		{raw: "//cdn.example.com/a.png", expected: "https://cdn.example.com/a.png", ok: true},
		{raw: "  https://cdn.example.com/a.png  ", expected: "https://cdn.example.com/a.png", ok: true},
		{raw: ""},
		{raw: "/relative/a.png"},
		{raw: "ftp://cdn.example.com/a.png"},
		{raw: "javascript:alert(1)"},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := tempproduct.NormalizeImageURL(tc.raw)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNewCartItem(t *testing.T) {
	item := tempproduct.NewCartItem("9001", 0, woodSpec)

	assert.Equal(t, "9001", item.VariantID)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, []tempproduct.CartProperty{
		{Key: "Height", Value: "200mm"},
		{Key: "Width", Value: "300mm"},
		{Key: "Material", Value: "Wood"},
	}, item.Properties)

	assert.Equal(t, 3, tempproduct.NewCartItem("9001", 3, woodSpec).Quantity)
}
