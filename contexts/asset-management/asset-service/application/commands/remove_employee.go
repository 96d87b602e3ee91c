package commands

import (
	"context"
	"log/slog"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type RemoveEmployeeCommand struct {
	HREmail       string
	EmployeeEmail string
}

type RemoveEmployeeUseCase struct {
	Affiliations ports.AffiliationRepository
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	Logger       *slog.Logger
}

// Execute removes the affiliation and releases one slot. Removing an
// employee twice fails with ErrAffiliationNotFound and leaves the counter alone.
func (u RemoveEmployeeUseCase) Execute(ctx context.Context, cmd RemoveEmployeeCommand) (entities.User, error) {
	logger := application.ResolveLogger(u.Logger)
	hrEmail := entities.NormalizeEmail(cmd.HREmail)
	employeeEmail := entities.NormalizeEmail(cmd.EmployeeEmail)
	if hrEmail == "" || employeeEmail == "" {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}

	event, err := newOutboxMessage(ctx, u.IDGenerator, EventAffiliationRemove, "hr_email", hrEmail, resolveNow(u.Clock), map[string]any{
		"employee_email": employeeEmail,
		"hr_email":       hrEmail,
	})
	if err != nil {
		return entities.User{}, err
	}

	hr, err := u.Affiliations.RemoveAffiliation(ctx, ports.RemoveAffiliationInput{
		HREmail:       hrEmail,
		EmployeeEmail: employeeEmail,
		Event:         event,
	})
	if err != nil {
		logger.Warn("remove employee failed",
			"event", "remove_employee_failed",
			"module", application.ModuleName,
			"layer", "application",
			"hr_email", hrEmail,
			"employee_email", employeeEmail,
			"error", err.Error(),
		)
		return entities.User{}, err
	}

	logger.Info("employee removed from team",
		"event", "affiliation_removed",
		"module", application.ModuleName,
		"layer", "application",
		"hr_email", hrEmail,
		"employee_email", employeeEmail,
		"current_employees", hr.CurrentEmployees,
	)
	return hr, nil
}
