//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"frame-pricing/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService("app-secret", "api-key")

	t.Run("valid token yields shop", func(t *testing.T) {
		token, err := svc.GenerateToken("frames.myshopify.com", time.Minute)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "frames.myshopify.com", claims.Shop())
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken("frames.myshopify.com", -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", "api-key").GenerateToken("frames.myshopify.com", time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		token, err := jwt.NewService("app-secret", "someone-else").GenerateToken("frames.myshopify.com", time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing dest", func(t *testing.T) {
		claims := jwt.SessionClaims{
			RegisteredClaims: gojwt.RegisteredClaims{
				Audience:  gojwt.ClaimStrings{"api-key"},
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("app-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
