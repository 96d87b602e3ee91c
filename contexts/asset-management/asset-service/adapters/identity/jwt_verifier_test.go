package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"

	"github.com/golang-jwt/jwt/v5"
)

func TestVerifyTokenAcceptsSignedToken(t *testing.T) {
	verifier := NewJWTVerifier("secret", WithIssuer("assetverse"), WithAudience("api"))
	token, err := verifier.Sign("HR@Acme.io", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	identity, err := verifier.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.Email != "hr@acme.io" {
		t.Fatalf("expected lowercased email, got %q", identity.Email)
	}
	if identity.ExpiresAt.IsZero() {
		t.Fatalf("expected expiry to be exposed")
	}
}

func TestVerifyTokenRejectsExpiredToken(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	issuer := NewJWTVerifier("secret", WithClock(func() time.Time { return past }))
	token, err := issuer.Sign("hr@acme.io", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	verifier := NewJWTVerifier("secret")
	if _, err := verifier.VerifyToken(context.Background(), token); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestVerifyTokenRejectsWrongSecretAndIssuer(t *testing.T) {
	token, err := NewJWTVerifier("other", WithIssuer("someone-else")).Sign("hr@acme.io", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewJWTVerifier("secret").VerifyToken(context.Background(), token); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for wrong secret, got %v", err)
	}
	if _, err := NewJWTVerifier("other", WithIssuer("assetverse")).VerifyToken(context.Background(), token); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for wrong issuer, got %v", err)
	}
}

func TestVerifyTokenRejectsMissingEmailAndOtherAlgorithms(t *testing.T) {
	verifier := NewJWTVerifier("secret")

	noEmail := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	signed, err := noEmail.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.VerifyToken(context.Background(), signed); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized without email, got %v", err)
	}

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Email:            "hr@acme.io",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	signed, err = hs512.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.VerifyToken(context.Background(), signed); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for HS512, got %v", err)
	}

	if _, err := verifier.VerifyToken(context.Background(), "   "); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for blank token, got %v", err)
	}
}
