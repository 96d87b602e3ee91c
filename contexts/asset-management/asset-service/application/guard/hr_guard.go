package guard

import (
	"context"
	"errors"
	"log/slog"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

// HRContext is the authorization context handed to HR-scoped operations.
type HRContext struct {
	HREmail      string
	CompanyName  string
	CompanyLogo  string
	PackageLimit int
}

type HRGuard struct {
	Users  ports.UserRepository
	Logger *slog.Logger
}

// Authorize resolves the HR context of a verified caller. Unknown users and
// non-HR roles are both forbidden.
func (g HRGuard) Authorize(ctx context.Context, callerEmail string) (HRContext, error) {
	logger := application.ResolveLogger(g.Logger)
	email := entities.NormalizeEmail(callerEmail)
	if email == "" {
		return HRContext{}, domainerrors.ErrUnauthorized
	}

	user, err := g.Users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			logger.Warn("hr guard rejected unknown user",
				"event", "hr_guard_unknown_user",
				"module", application.ModuleName,
				"layer", "application",
				"email", email,
			)
			return HRContext{}, domainerrors.ErrNotHRManager
		}
		return HRContext{}, err
	}

	switch user.Role {
	case entities.RoleHR:
		return HRContext{
			HREmail:      user.Email,
			CompanyName:  user.CompanyName,
			CompanyLogo:  user.CompanyLogo,
			PackageLimit: user.EffectivePackageLimit(),
		}, nil
	case entities.RoleEmployee:
		logger.Warn("hr guard rejected employee",
			"event", "hr_guard_forbidden",
			"module", application.ModuleName,
			"layer", "application",
			"email", email,
		)
		return HRContext{}, domainerrors.ErrNotHRManager
	default:
		return HRContext{}, domainerrors.ErrInvalidRole
	}
}
