package queries

import (
	"context"
	"errors"
	"log/slog"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type GetUserRoleUseCase struct {
	Users  ports.UserRepository
	Logger *slog.Logger
}

// Execute returns the stored role, or found=false for unknown emails.
func (u GetUserRoleUseCase) Execute(ctx context.Context, email string) (entities.Role, bool, error) {
	user, err := u.Users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return "", false, nil
		}
		application.ResolveLogger(u.Logger).Error("get user role failed",
			"event", "get_user_role_failed",
			"module", application.ModuleName,
			"layer", "application",
			"error", err.Error(),
		)
		return "", false, err
	}
	return user.Role, true, nil
}

type PackageStatus struct {
	CurrentEmployees int
	PackageLimit     int
}

type PackageStatusUseCase struct {
	Users  ports.UserRepository
	Logger *slog.Logger
}

func (u PackageStatusUseCase) Execute(ctx context.Context, email string) (PackageStatus, error) {
	user, err := u.Users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return PackageStatus{}, domainerrors.ErrHRNotFound
		}
		return PackageStatus{}, err
	}
	return PackageStatus{
		CurrentEmployees: user.CurrentEmployees,
		PackageLimit:     user.EffectivePackageLimit(),
	}, nil
}

type ListPackagesUseCase struct {
	Packages ports.PackageRepository
	Logger   *slog.Logger
}

func (u ListPackagesUseCase) Execute(ctx context.Context) ([]entities.Package, error) {
	return u.Packages.ListPackages(ctx)
}
