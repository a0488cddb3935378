//go:build unit

package middleware_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"frame-pricing/internal/handler/middleware"
	"frame-pricing/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const (
	apiSecret = "hush"
	apiKey    = "app-key"
)

func signedQuery(params url.Values, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(middleware.ProxySignaturePayload(params)))
	params.Set("signature", hex.EncodeToString(mac.Sum(nil)))
	return params.Encode()
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewShopAuthMiddleware(apiSecret, jwt.NewService(apiSecret, apiKey))
	echo := func(c *gin.Context) {
		shop, _ := middleware.GetShop(c)
		c.String(http.StatusOK, shop)
	}
	r.GET("/proxy", auth.RequireAppProxy(), echo)
	r.GET("/admin", auth.RequireSessionToken(), echo)
	r.POST("/cron", middleware.RequireCronSecret("cron-secret"), echo)
	r.POST("/cron-unset", middleware.RequireCronSecret(""), echo)
	return r
}

func TestProxySignaturePayload(t *testing.T) {
	q := url.Values{
		"shop":        {"test-shop.myshopify.com"},
		"path_prefix": {"/apps/frame"},
		"timestamp":   {"1317327555"},
		"extra":       {"1", "2"},
		"signature":   {"ignored"},
	}
	assert.Equal(t,
		"extra=1,2path_prefix=/apps/frameshop=test-shop.myshopify.comtimestamp=1317327555",
		middleware.ProxySignaturePayload(q))
}

func TestRequireAppProxy(t *testing.T) {
	r := newAuthRouter()
	base := func() url.Values {
		return url.Values{
			"shop":        {"test-shop.myshopify.com"},
			"path_prefix": {"/apps/frame"},
			"timestamp":   {"1317327555"},
		}
	}

	testCases := []struct {
		name       string
		query      string
		expectCode int
	}{
		{name: "valid signature", query: signedQuery(base(), apiSecret), expectCode: http.StatusOK},
		{name: "wrong secret", query: signedQuery(base(), "other"), expectCode: http.StatusUnauthorized},
		{name: "missing signature", query: base().Encode(), expectCode: http.StatusUnauthorized},
		{name: "non-hex signature", query: base().Encode() + "&signature=zz", expectCode: http.StatusUnauthorized},
		{
			name: "tampered after signing",
			query: func() string {
				q, _ := url.ParseQuery(signedQuery(base(), apiSecret))
				q.Set("timestamp", "1317327556")
				return q.Encode()
			}(),
			expectCode: http.StatusUnauthorized,
		},
		{
			name: "signed but not a shop domain",
			query: func() string {
				q := base()
				q.Set("shop", "evil.example.com")
				return signedQuery(q, apiSecret)
			}(),
			expectCode: http.StatusUnauthorized,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/proxy?"+tc.query, nil))

			assert.Equal(t, tc.expectCode, w.Code, w.Body.String())
			if tc.expectCode == http.StatusOK {
				assert.Equal(t, "test-shop.myshopify.com", w.Body.String())
			}
		})
	}
}

func TestRequireSessionToken(t *testing.T) {
	r := newAuthRouter()
	valid, err := jwt.NewService(apiSecret, apiKey).GenerateToken("test-shop.myshopify.com", time.Minute)
	assert.NoError(t, err)
	foreign, err := jwt.NewService("other", apiKey).GenerateToken("test-shop.myshopify.com", time.Minute)
	assert.NoError(t, err)

	testCases := []struct {
		name       string
		header     string
		expectCode int
	}{
		{name: "valid token", header: "Bearer " + valid, expectCode: http.StatusOK},
		{name: "missing header", expectCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", expectCode: http.StatusUnauthorized},
		{name: "foreign signature", header: "Bearer " + foreign, expectCode: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not.a.token", expectCode: http.StatusUnauthorized},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectCode, w.Code)
			if tc.expectCode == http.StatusOK {
				assert.Equal(t, "test-shop.myshopify.com", w.Body.String())
			}
		})
	}
}

func TestRequireCronSecret(t *testing.T) {
	r := newAuthRouter()

	testCases := []struct {
		name       string
		path       string
		secret     string
		expectCode int
	}{
		{name: "matching secret", path: "/cron", secret: "cron-secret", expectCode: http.StatusOK},
		{name: "wrong secret", path: "/cron", secret: "guess", expectCode: http.StatusUnauthorized},
		{name: "missing secret", path: "/cron", expectCode: http.StatusUnauthorized},
		{name: "unconfigured secret rejects empty header", path: "/cron-unset", expectCode: http.StatusUnauthorized},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tc.path, nil)
			if tc.secret != "" {
				req.Header.Set(middleware.CronSecretHeader, tc.secret)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectCode, w.Code)
		})
	}
}
