package commands

import (
	"context"
	"log/slog"
	"strings"

	application "assetverse/contexts/asset-management/asset-service/application"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type CancelRequestCommand struct {
	RequestID      string
	RequesterEmail string
}

type CancelRequestResult struct {
	DeletedCount int
}

// CancelRequestUseCase withdraws the caller's own pending request. Requests
// that already left pending, or belong to someone else, are left untouched.
type CancelRequestUseCase struct {
	Requests ports.RequestRepository
	Logger   *slog.Logger
}

func (u CancelRequestUseCase) Execute(ctx context.Context, cmd CancelRequestCommand) (CancelRequestResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.RequestID) == "" || strings.TrimSpace(cmd.RequesterEmail) == "" {
		return CancelRequestResult{}, domainerrors.ErrInvalidRequest
	}

	deleted, err := u.Requests.CancelRequest(ctx, cmd.RequestID, strings.ToLower(strings.TrimSpace(cmd.RequesterEmail)))
	if err != nil {
		return CancelRequestResult{}, err
	}

	result := CancelRequestResult{}
	if deleted {
		result.DeletedCount = 1
	}
	logger.Info("cancel request completed",
		"event", "cancel_request_completed",
		"module", application.ModuleName,
		"layer", "application",
		"request_id", cmd.RequestID,
		"deleted", deleted,
	)
	return result, nil
}
