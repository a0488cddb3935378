package jwt

import (
	"errors"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// SessionClaims are the claims of an embedded-admin session token.
// Dest carries the shop origin, e.g. https://example.myshopify.com.
type SessionClaims struct {
	Dest string `json:"dest"`
	SID  string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// Shop returns the host part of Dest.
func (c *SessionClaims) Shop() string {
	u, err := url.Parse(c.Dest)
	if err != nil {
		return ""
	}
	return u.Host
}

// Service signs and verifies HS256 session tokens with the app secret.
type Service struct {
	secretKey []byte
	audience  string
	leeway    time.Duration
}

func NewService(secretKey, audience string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		audience:  audience,
		leeway:    5 * time.Second,
	}
}

// GenerateToken issues a token for shop, valid for ttl. The platform issues these
// in production; this exists for tests and local tooling.
func (s *Service) GenerateToken(shop string, ttl time.Duration) (string, error) {
	now := time.Now()
	dest := "https://" + shop
	claims := SessionClaims{
		Dest: dest,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    dest + "/admin",
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Second)),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Shop() == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
