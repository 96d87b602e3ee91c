package queries

import (
	"context"
	"errors"
	"log/slog"

	"assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type MyEmployees struct {
	Employees        []entities.Affiliation
	CurrentEmployees int
	PackageLimit     int
}

type ListMyEmployeesUseCase struct {
	Users        ports.UserRepository
	Affiliations ports.AffiliationRepository
	Logger       *slog.Logger
}

func (u ListMyEmployeesUseCase) Execute(ctx context.Context, hrEmail string) (MyEmployees, error) {
	hr, err := u.Users.GetUserByEmail(ctx, hrEmail)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return MyEmployees{}, domainerrors.ErrHRNotFound
		}
		return MyEmployees{}, err
	}
	employees, err := u.Affiliations.ListActiveAffiliations(ctx, hr.Email)
	if err != nil {
		application.ResolveLogger(u.Logger).Error("list employees failed",
			"event", "team_list_employees_failed",
			"module", application.ModuleName,
			"layer", "application",
			"hr_email", hr.Email,
			"error", err.Error(),
		)
		return MyEmployees{}, err
	}
	return MyEmployees{
		Employees:        employees,
		CurrentEmployees: hr.CurrentEmployees,
		PackageLimit:     hr.EffectivePackageLimit(),
	}, nil
}

type ListAvailableEmployeesUseCase struct {
	Users  ports.UserRepository
	Logger *slog.Logger
}

func (u ListAvailableEmployeesUseCase) Execute(ctx context.Context) ([]entities.User, error) {
	users, err := u.Users.ListUnaffiliatedEmployees(ctx)
	if err != nil {
		application.ResolveLogger(u.Logger).Error("list available employees failed",
			"event", "team_list_available_failed",
			"module", application.ModuleName,
			"layer", "application",
			"error", err.Error(),
		)
		return nil, err
	}
	return users, nil
}

// MyTeamUseCase resolves the caller's team: an HR sees their own team, an
// employee sees the team of their active affiliation.
type MyTeamUseCase struct {
	Users        ports.UserRepository
	Affiliations ports.AffiliationRepository
	Logger       *slog.Logger
}

// Execute returns the HR user first, followed by the affiliated employees.
func (u MyTeamUseCase) Execute(ctx context.Context, callerEmail string) ([]entities.User, error) {
	logger := application.ResolveLogger(u.Logger)
	caller, err := u.Users.GetUserByEmail(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	hrEmail := ""
	switch caller.Role {
	case entities.RoleHR:
		hrEmail = caller.Email
	case entities.RoleEmployee:
		affiliation, found, err := u.Affiliations.FindAffiliation(ctx, caller.Email)
		if err != nil {
			return nil, err
		}
		if !found || !affiliation.IsActive() {
			return []entities.User{}, nil
		}
		hrEmail = affiliation.HREmail
	default:
		return nil, domainerrors.ErrInvalidRole
	}

	affiliations, err := u.Affiliations.ListActiveAffiliations(ctx, hrEmail)
	if err != nil {
		logger.Error("list team affiliations failed",
			"event", "team_affiliations_failed",
			"module", application.ModuleName,
			"layer", "application",
			"hr_email", hrEmail,
			"error", err.Error(),
		)
		return nil, err
	}
	emails := make([]string, 0, len(affiliations)+1)
	emails = append(emails, hrEmail)
	for _, affiliation := range affiliations {
		emails = append(emails, affiliation.EmployeeEmail)
	}

	users, err := u.Users.ListUsersByEmails(ctx, emails)
	if err != nil {
		logger.Error("resolve team failed",
			"event", "team_resolve_failed",
			"module", application.ModuleName,
			"layer", "application",
			"hr_email", hrEmail,
			"error", err.Error(),
		)
		return nil, err
	}

	team := make([]entities.User, 0, len(users))
	for _, user := range users {
		if user.Email == hrEmail {
			team = append([]entities.User{user}, team...)
			continue
		}
		team = append(team, user)
	}
	return team, nil
}
