package guard

import (
	"context"
	"log/slog"
	"strings"

	application "assetverse/contexts/asset-management/asset-service/application"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

// Authenticator turns a bearer credential into a verified caller identity.
type Authenticator struct {
	Verifier ports.IdentityVerifier
	Logger   *slog.Logger
}

func (a Authenticator) Authenticate(ctx context.Context, token string) (ports.VerifiedIdentity, error) {
	logger := application.ResolveLogger(a.Logger)
	token = strings.TrimSpace(token)
	if token == "" || a.Verifier == nil {
		return ports.VerifiedIdentity{}, domainerrors.ErrUnauthorized
	}

	identity, err := a.Verifier.VerifyToken(ctx, token)
	if err != nil {
		logger.Warn("bearer token rejected",
			"event", "auth_token_rejected",
			"module", application.ModuleName,
			"layer", "application",
			"error", err.Error(),
		)
		return ports.VerifiedIdentity{}, domainerrors.ErrUnauthorized
	}
	if strings.TrimSpace(identity.Email) == "" {
		return ports.VerifiedIdentity{}, domainerrors.ErrUnauthorized
	}
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	return identity, nil
}
