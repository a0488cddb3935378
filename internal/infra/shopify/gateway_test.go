//go:build unit

package shopify_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/infra/shopify"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/usecase/shared"
	sharedmock "frame-pricing/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	productSetOK = `{"productSet":{"product":{"id":"gid://shopify/Product/7001","title":"Custom Frame 200×300mm - Wood",
		"handle":"custom-frame","onlineStoreUrl":null,
		"variants":{"nodes":[{"id":"gid://shopify/ProductVariant/9001","price":"56.00"}]}},"userErrors":[]}}`
	publicationsOK = `{"publications":{"nodes":[{"id":"gid://shopify/Publication/1","name":"Point of Sale"},
		{"id":"gid://shopify/Publication/2","name":"Online Store"}]}}`
	publishOK = `{"publishablePublish":{"publishable":{"onlineStoreUrl":"https://shop.example/products/custom-frame"},"userErrors":[]}}`
)

// adminScript answers each operation by the mutation or query name it contains.
type adminScript map[string]func(req shared.AdminRequest) (*shared.AdminResponse, error)

func data(raw string) func(shared.AdminRequest) (*shared.AdminResponse, error) {
	return func(shared.AdminRequest) (*shared.AdminResponse, error) {
		return &shared.AdminResponse{Data: json.RawMessage(raw)}, nil
	}
}

func newScriptedAdmin(t *testing.T, script adminScript) *sharedmock.MockAdminAPI {
	t.Helper()
	admin := sharedmock.NewMockAdminAPI(gomock.NewController(t))
	admin.EXPECT().Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req shared.AdminRequest) (*shared.AdminResponse, error) {
			for name, fn := range script {
				if strings.Contains(req.Query, name) {
					return fn(req)
				}
			}
			t.Fatalf("unexpected admin request: %s", req.Query)
			return nil, nil
		}).AnyTimes()
	return admin
}

func createInput(imageURL string) shared.CreateProductInput {
	return shared.CreateProductInput{
		Spec:            pricing.ReconstructDimensionSpec(200, 300, pricing.MaterialWood),
		Price:           decimal.RequireFromString("56"),
		Title:           "Custom Frame 200×300mm - Wood",
		DescriptionHTML: "<p>frame</p>",
		ImageURL:        imageURL,
	}
}

// =============================================================================
// CreateProduct
// =============================================================================

func TestGateway_CreateProduct(t *testing.T) {
	ctx := context.Background()
	gw := shopify.NewGateway()

	t.Run("success: creates, publishes and returns legacy ids", func(t *testing.T) {
		var sent map[string]any
		admin := newScriptedAdmin(t, adminScript{
			"createTempProduct": func(req shared.AdminRequest) (*shared.AdminResponse, error) {
				sent = req.Variables["input"].(map[string]any)
				assert.Equal(t, true, req.Variables["synchronous"])
				return data(productSetOK)(req)
			},
			"query publications": data(publicationsOK),
			"publishTempProduct": func(req shared.AdminRequest) (*shared.AdminResponse, error) {
				assert.Equal(t, "gid://shopify/Product/7001", req.Variables["id"])
				assert.Equal(t, []map[string]any{{"publicationId": "gid://shopify/Publication/2"}}, req.Variables["input"])
				return data(publishOK)(req)
			},
		})

		product, err := gw.CreateProduct(ctx, admin, createInput("//cdn.example.com/frame.png"))

		require.NoError(t, err)
		assert.Equal(t, "7001", product.ProductID)
		assert.Equal(t, "9001", product.VariantID)
		assert.Equal(t, "custom-frame", product.Handle)
		assert.Equal(t, "https://shop.example/products/custom-frame", product.PublicURL)

		require.NotNil(t, sent)
		assert.Equal(t, "Temporary Product", sent["productType"])
		assert.Equal(t, "Dynamic Pricing", sent["vendor"])
		assert.Equal(t, "ACTIVE", sent["status"])
		assert.Equal(t, []string{"temp-product", "auto-delete", "material-wood"}, sent["tags"])
		variants := sent["variants"].([]map[string]any)
		assert.Equal(t, "56.00", variants[0]["price"])
		files := sent["files"].([]map[string]any)
		assert.Equal(t, "https://cdn.example.com/frame.png", files[0]["originalSource"])
	})

	t.Run("success: unsupported image url is dropped", func(t *testing.T) {
		var sent map[string]any
		admin := newScriptedAdmin(t, adminScript{
			"createTempProduct": func(req shared.AdminRequest) (*shared.AdminResponse, error) {
				sent = req.Variables["input"].(map[string]any)
				return data(productSetOK)(req)
			},
			"query publications": data(publicationsOK),
			"publishTempProduct": data(publishOK),
		})

		_, err := gw.CreateProduct(ctx, admin, createInput("ftp://cdn.example.com/frame.png"))

		require.NoError(t, err)
		_, hasFiles := sent["files"]
		assert.False(t, hasFiles)
	})

	t.Run("success: publish failure is tolerated", func(t *testing.T) {
		admin := newScriptedAdmin(t, adminScript{
			"createTempProduct":  data(productSetOK),
			"query publications": data(`{"publications":{"nodes":[]}}`),
		})

		product, err := gw.CreateProduct(ctx, admin, createInput(""))

		require.NoError(t, err)
		assert.Equal(t, "7001", product.ProductID)
		assert.Empty(t, product.PublicURL)
	})

	t.Run("error: user errors become a mutation error", func(t *testing.T) {
		admin := newScriptedAdmin(t, adminScript{
			"createTempProduct": data(`{"productSet":{"product":null,"userErrors":[{"field":["input","title"],"message":"can't be blank"}]}}`),
		})

		product, err := gw.CreateProduct(ctx, admin, createInput(""))

		require.Error(t, err)
		assert.Nil(t, product)
		var mErr *errs.RemoteMutationError
		require.True(t, errs.As(err, &mErr))
		assert.Equal(t, []string{"input.title: can't be blank"}, mErr.Messages)
		assert.True(t, errs.Is(err, errs.ErrRemoteMutation))
	})

	t.Run("error: no product in payload", func(t *testing.T) {
		admin := newScriptedAdmin(t, adminScript{
			"createTempProduct": data(`{"productSet":{"product":null,"userErrors":[]}}`),
		})

		_, err := gw.CreateProduct(ctx, admin, createInput(""))

		assert.True(t, errs.Is(err, errs.ErrRemoteEmptyResult))
	})

	t.Run("error: top-level graphql errors", func(t *testing.T) {
		admin := newScriptedAdmin(t, adminScript{
			"createTempProduct": func(shared.AdminRequest) (*shared.AdminResponse, error) {
				return &shared.AdminResponse{Errors: []shared.GraphQLError{{Message: "Throttled"}}}, nil
			},
		})

		_, err := gw.CreateProduct(ctx, admin, createInput(""))

		assert.True(t, errs.Is(err, errs.ErrRemoteMutation))
	})

	t.Run("error: transport failure passes through", func(t *testing.T) {
		admin := newScriptedAdmin(t, adminScript{
			"createTempProduct": func(shared.AdminRequest) (*shared.AdminResponse, error) {
				return nil, errs.Mark(errors.New("connection reset"), errs.ErrRemoteTransport)
			},
		})

		_, err := gw.CreateProduct(ctx, admin, createInput(""))

		assert.True(t, errs.Is(err, errs.ErrRemoteTransport))
	})
}

// =============================================================================
// DeleteProduct / BulkDelete
// =============================================================================

func TestGateway_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	gw := shopify.NewGateway()

	admin := newScriptedAdmin(t, adminScript{
		"deleteTempProduct": func(req shared.AdminRequest) (*shared.AdminResponse, error) {
			assert.Equal(t, map[string]any{"id": "gid://shopify/Product/7001"}, req.Variables["input"])
			return data(`{"productDelete":{"deletedProductId":"gid://shopify/Product/7001","userErrors":[]}}`)(req)
		},
	})

	deleted, err := gw.DeleteProduct(ctx, admin, "7001")

	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Product/7001", deleted)
}

func TestGateway_BulkDelete(t *testing.T) {
	ctx := context.Background()
	gw := shopify.NewGateway()

	admin := newScriptedAdmin(t, adminScript{
		"deleteTempProduct": func(req shared.AdminRequest) (*shared.AdminResponse, error) {
			id := req.Variables["input"].(map[string]any)["id"].(string)
			switch id {
			case "gid://shopify/Product/2":
				return data(`{"productDelete":{"deletedProductId":null,"userErrors":[{"field":["id"],"message":"Product does not exist"}]}}`)(req)
			case "gid://shopify/Product/3":
				return nil, errs.Mark(errors.New("timeout"), errs.ErrRemoteTransport)
			}
			return data(`{"productDelete":{"deletedProductId":"` + id + `","userErrors":[]}}`)(req)
		},
	})

	result := gw.BulkDelete(ctx, admin, []string{"1", "2", "3", "4"})

	assert.Equal(t, []string{"1", "4"}, result.Succeeded)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, "2", result.Failed[0].ID)
	assert.Contains(t, result.Failed[0].Message, "Product does not exist")
	assert.Equal(t, "3", result.Failed[1].ID)
	assert.Equal(t, 4, len(result.Succeeded)+len(result.Failed))
}

func TestGateway_BulkDeleteEmpty(t *testing.T) {
	result := shopify.NewGateway().BulkDelete(context.Background(), sharedmock.NewMockAdminAPI(gomock.NewController(t)), nil)

	assert.Empty(t, result.Succeeded)
	assert.Empty(t, result.Failed)
}
