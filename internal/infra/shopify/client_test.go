//go:build unit

package shopify_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frame-pricing/internal/infra/shopify"
	"frame-pricing/internal/pkg/config"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShopifyConfig() config.ShopifyConfig {
	return config.NewTestConfig().Shopify
}

func TestAdminClient_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("success: posts the document with the shop token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "shpat_abc", r.Header.Get("X-Shopify-Access-Token"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body struct {
				Query     string         `json:"query"`
				Variables map[string]any `json:"variables"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "query { shop { name } }", body.Query)
			assert.Equal(t, "x", body.Variables["v"])

			_, _ = io.WriteString(w, `{"data":{"shop":{"name":"Test"}}}`)
		}))
		defer srv.Close()

		client := shopify.NewClientFactory(testShopifyConfig(), shopify.WithEndpoint(srv.URL)).
			ForShop("test-shop.myshopify.com", "shpat_abc")

		resp, err := client.Execute(ctx, shared.AdminRequest{
			Query:     "query { shop { name } }",
			Variables: map[string]any{"v": "x"},
		})

		require.NoError(t, err)
		assert.JSONEq(t, `{"shop":{"name":"Test"}}`, string(resp.Data))
		assert.Empty(t, resp.Errors)
	})

	t.Run("success: graphql errors are returned to the caller", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"data":null,"errors":[{"message":"Throttled"}]}`)
		}))
		defer srv.Close()

		client := shopify.NewClientFactory(testShopifyConfig(), shopify.WithEndpoint(srv.URL)).ForShop("s.myshopify.com", "t")

		resp, err := client.Execute(ctx, shared.AdminRequest{Query: "{ shop { name } }"})

		require.NoError(t, err)
		assert.Equal(t, []shared.GraphQLError{{Message: "Throttled"}}, resp.Errors)
	})

	statusCases := []struct {
		name   string
		status int
		target error
	}{
		{name: "401 is unauthorized", status: http.StatusUnauthorized, target: errs.ErrUnauthorized},
		{name: "403 is unauthorized", status: http.StatusForbidden, target: errs.ErrUnauthorized},
		{name: "429 is transport", status: http.StatusTooManyRequests, target: errs.ErrRemoteTransport},
		{name: "502 is transport", status: http.StatusBadGateway, target: errs.ErrRemoteTransport},
	}
	for _, tc := range statusCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, `{"errors":"nope"}`)
			}))
			defer srv.Close()

			client := shopify.NewClientFactory(testShopifyConfig(), shopify.WithEndpoint(srv.URL)).ForShop("s.myshopify.com", "t")

			resp, err := client.Execute(ctx, shared.AdminRequest{Query: "{ shop { name } }"})

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, errs.Is(err, tc.target), "got %v", err)
		})
	}

	t.Run("error: undecodable body is transport", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `<html>maintenance</html>`)
		}))
		defer srv.Close()

		client := shopify.NewClientFactory(testShopifyConfig(), shopify.WithEndpoint(srv.URL)).ForShop("s.myshopify.com", "t")

		_, err := client.Execute(ctx, shared.AdminRequest{Query: "{ shop { name } }"})

		assert.True(t, errs.Is(err, errs.ErrRemoteTransport))
	})

	t.Run("error: unreachable host is transport", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		client := shopify.NewClientFactory(testShopifyConfig(), shopify.WithEndpoint(url)).ForShop("s.myshopify.com", "t")

		_, err := client.Execute(ctx, shared.AdminRequest{Query: "{ shop { name } }"})

		assert.True(t, errs.Is(err, errs.ErrRemoteTransport))
	})
}

func TestAdminClient_RateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"data":{}}`)
	}))
	defer srv.Close()

	cfg := testShopifyConfig()
	cfg.RequestsPerSec = 0.1
	cfg.Burst = 1
	factory := shopify.NewClientFactory(cfg, shopify.WithEndpoint(srv.URL))

	first := factory.ForShop("a.myshopify.com", "t")
	_, err := first.Execute(context.Background(), shared.AdminRequest{Query: "{}"})
	require.NoError(t, err)

	t.Run("same shop waits for a token", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := factory.ForShop("a.myshopify.com", "t").Execute(ctx, shared.AdminRequest{Query: "{}"})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrRemoteTransport))
	})

	t.Run("other shops have their own budget", func(t *testing.T) {
		_, err := factory.ForShop("b.myshopify.com", "t").Execute(context.Background(), shared.AdminRequest{Query: "{}"})
		assert.NoError(t, err)
	})
}
