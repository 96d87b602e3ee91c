package commands

import (
	"context"
	"log/slog"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type AddToTeamCommand struct {
	HREmail       string
	EmployeeEmail string
	EmployeeName  string
}

type AddToTeamUseCase struct {
	Users        ports.UserRepository
	Affiliations ports.AffiliationRepository
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	Logger       *slog.Logger
}

func (u AddToTeamUseCase) Execute(ctx context.Context, cmd AddToTeamCommand) (entities.Affiliation, error) {
	logger := application.ResolveLogger(u.Logger)
	hrEmail := entities.NormalizeEmail(cmd.HREmail)
	employeeEmail := entities.NormalizeEmail(cmd.EmployeeEmail)
	if hrEmail == "" || employeeEmail == "" || hrEmail == employeeEmail {
		return entities.Affiliation{}, domainerrors.ErrInvalidRequest
	}

	employee, err := u.Users.GetUserByEmail(ctx, employeeEmail)
	if err != nil {
		return entities.Affiliation{}, err
	}
	if employee.Role != entities.RoleEmployee {
		return entities.Affiliation{}, domainerrors.ErrInvalidRequest
	}
	employeeName := cmd.EmployeeName
	if employeeName == "" {
		employeeName = employee.Name
	}

	now := resolveNow(u.Clock)
	affiliationID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Affiliation{}, err
	}
	event, err := newOutboxMessage(ctx, u.IDGenerator, EventAffiliationAdded, "hr_email", hrEmail, now, map[string]any{
		"affiliation_id": affiliationID,
		"employee_email": employeeEmail,
		"hr_email":       hrEmail,
	})
	if err != nil {
		return entities.Affiliation{}, err
	}

	affiliation, err := u.Affiliations.AddAffiliation(ctx, ports.AddAffiliationInput{
		AffiliationID: affiliationID,
		HREmail:       hrEmail,
		EmployeeEmail: employeeEmail,
		EmployeeName:  employeeName,
		AffiliatedAt:  now,
		Event:         event,
	})
	if err != nil {
		logger.Warn("add to team failed",
			"event", "add_to_team_failed",
			"module", application.ModuleName,
			"layer", "application",
			"hr_email", hrEmail,
			"employee_email", employeeEmail,
			"error", err.Error(),
		)
		return entities.Affiliation{}, err
	}

	logger.Info("employee added to team",
		"event", "affiliation_added",
		"module", application.ModuleName,
		"layer", "application",
		"affiliation_id", affiliation.AffiliationID,
		"hr_email", hrEmail,
		"employee_email", employeeEmail,
	)
	return affiliation, nil
}
