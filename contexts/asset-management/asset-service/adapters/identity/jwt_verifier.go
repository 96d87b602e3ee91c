package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity provider's email next to the registered claims.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 bearer tokens issued by the identity provider.
type JWTVerifier struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

type Option func(*JWTVerifier)

func WithIssuer(issuer string) Option {
	return func(v *JWTVerifier) { v.issuer = strings.TrimSpace(issuer) }
}

func WithAudience(audience string) Option {
	return func(v *JWTVerifier) { v.audience = strings.TrimSpace(audience) }
}

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(v *JWTVerifier) {
		if now != nil {
			v.now = now
		}
	}
}

func NewJWTVerifier(secret string, opts ...Option) *JWTVerifier {
	v := &JWTVerifier{
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *JWTVerifier) VerifyToken(_ context.Context, token string) (ports.VerifiedIdentity, error) {
	token = strings.TrimSpace(token)
	if token == "" || len(v.secret) == 0 {
		return ports.VerifiedIdentity{}, domainerrors.ErrUnauthorized
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(v.audience))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, parserOpts...)
	if err != nil || !parsed.Valid {
		return ports.VerifiedIdentity{}, fmt.Errorf("%w: %v", domainerrors.ErrUnauthorized, err)
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		return ports.VerifiedIdentity{}, domainerrors.ErrUnauthorized
	}
	identity := ports.VerifiedIdentity{
		Email:   email,
		Subject: claims.Subject,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return identity, nil
}

// Sign issues a token for email. Used by local tooling and tests.
func (v *JWTVerifier) Sign(email string, ttl time.Duration) (string, error) {
	now := v.now()
	claims := Claims{
		Email: strings.ToLower(strings.TrimSpace(email)),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strings.ToLower(strings.TrimSpace(email)),
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if v.audience != "" {
		claims.Audience = jwt.ClaimStrings{v.audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
