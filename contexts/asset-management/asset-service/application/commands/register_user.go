package commands

import (
	"context"
	"log/slog"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type RegisterUserCommand struct {
	Email       string
	Name        string
	Photo       string
	Role        string
	CompanyName string
	CompanyLogo string
	DateOfBirth string
}

type RegisterUserResult struct {
	User     entities.User
	Inserted bool
}

// RegisterUserUseCase persists a profile on first sign-in. Repeated sign-ins
// leave the stored profile untouched.
type RegisterUserUseCase struct {
	Users  ports.UserRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (u RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (RegisterUserResult, error) {
	logger := application.ResolveLogger(u.Logger)
	role, err := entities.ParseRole(cmd.Role)
	if err != nil {
		return RegisterUserResult{}, err
	}
	user, err := entities.NewUser(entities.User{
		Email:       cmd.Email,
		Name:        cmd.Name,
		Photo:       cmd.Photo,
		Role:        role,
		CompanyName: cmd.CompanyName,
		CompanyLogo: cmd.CompanyLogo,
		DateOfBirth: cmd.DateOfBirth,
	}, resolveNow(u.Clock))
	if err != nil {
		return RegisterUserResult{}, err
	}

	stored, inserted, err := u.Users.CreateUserIfAbsent(ctx, user)
	if err != nil {
		logger.Error("register user failed",
			"event", "register_user_failed",
			"module", application.ModuleName,
			"layer", "application",
			"email", user.Email,
			"error", err.Error(),
		)
		return RegisterUserResult{}, err
	}

	logger.Info("register user completed",
		"event", "register_user_completed",
		"module", application.ModuleName,
		"layer", "application",
		"email", stored.Email,
		"role", stored.Role,
		"inserted", inserted,
	)
	return RegisterUserResult{User: stored, Inserted: inserted}, nil
}
