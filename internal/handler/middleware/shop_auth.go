package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"frame-pricing/internal/handler/httperr"
	"frame-pricing/internal/infra/shopify"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxShopKey = "shop"

	CronSecretHeader = "X-Cron-Secret"
)

var (
	errMissingCredentials = errs.Mark(errs.New("missing credentials"), errs.ErrUnauthorized)
	errBadSignature       = errs.Mark(errs.New("app proxy signature mismatch"), errs.ErrUnauthorized)
	errBadSessionToken    = errs.Mark(errs.New("invalid session token"), errs.ErrUnauthorized)
	errBadCronSecret      = errs.New("invalid cron secret")
)

type ShopAuthMiddleware struct {
	apiSecret []byte
	tokens    *jwt.Service
}

func NewShopAuthMiddleware(apiSecret string, tokens *jwt.Service) *ShopAuthMiddleware {
	return &ShopAuthMiddleware{apiSecret: []byte(apiSecret), tokens: tokens}
}

// RequireAppProxy verifies the signature the platform appends to app-proxy requests.
func (m *ShopAuthMiddleware) RequireAppProxy() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		signature := query.Get("signature")
		shop := query.Get("shop")
		if signature == "" || shop == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingCredentials, "Authentication required", nil)
			return
		}

		if !m.validProxySignature(query, signature) || !shopify.ValidShopDomain(shop) {
			slog.Warn("app proxy signature rejected", "shop", shop, "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusUnauthorized, errBadSignature, "Authentication required", nil)
			return
		}

		c.Set(ctxShopKey, shop)
		c.Next()
	}
}

// RequireSessionToken authenticates embedded-admin calls carrying a Bearer session token.
func (m *ShopAuthMiddleware) RequireSessionToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingCredentials, "Access token required", nil)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Session token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errBadSessionToken), "Invalid or expired token", nil)
			return
		}

		shop := claims.Shop()
		if !shopify.ValidShopDomain(shop) {
			httperr.AbortWithError(c, http.StatusUnauthorized, errBadSessionToken, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxShopKey, shop)
		c.Next()
	}
}

func (m *ShopAuthMiddleware) validProxySignature(query url.Values, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, m.apiSecret)
	mac.Write([]byte(ProxySignaturePayload(query)))
	return hmac.Equal(got, mac.Sum(nil))
}

// ProxySignaturePayload is the sorted key=value concatenation the platform signs.
// Repeated keys are joined with commas and the signature parameter is skipped.
func ProxySignaturePayload(query url.Values) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		if k == "signature" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strings.Join(query[k], ","))
	}
	return b.String()
}

// RequireCronSecret guards scheduler-facing endpoints. An empty secret rejects everything.
func RequireCronSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		given := c.GetHeader(CronSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
			slog.Warn("cron secret rejected", "client_ip", c.ClientIP())
			httperr.AbortWithError(c, http.StatusUnauthorized, errBadCronSecret, "Unauthorized", nil)
			return
		}
		c.Next()
	}
}

func GetShop(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxShopKey)
	if !exists {
		return "", false
	}
	shop, ok := v.(string)
	return shop, ok && shop != ""
}
