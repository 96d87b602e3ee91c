package commands

import (
	"context"
	"log/slog"
	"strings"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/domain/services"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type RejectRequestCommand struct {
	RequestID string
	HREmail   string
}

type RejectRequestUseCase struct {
	Requests    ports.RequestRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u RejectRequestUseCase) Execute(ctx context.Context, cmd RejectRequestCommand) (entities.AssetRequest, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.RequestID) == "" || strings.TrimSpace(cmd.HREmail) == "" {
		return entities.AssetRequest{}, domainerrors.ErrInvalidRequest
	}

	request, err := u.Requests.GetRequest(ctx, cmd.RequestID)
	if err != nil {
		return entities.AssetRequest{}, err
	}
	if err := services.EnsureOwnedByHR(request, cmd.HREmail); err != nil {
		return entities.AssetRequest{}, err
	}
	if err := services.EnsureTransition(request, entities.RequestStatusRejected); err != nil {
		return entities.AssetRequest{}, err
	}

	now := resolveNow(u.Clock)
	event, err := newOutboxMessage(ctx, u.IDGenerator, EventRequestRejected, "request_id", request.RequestID, now, map[string]any{
		"request_id":      request.RequestID,
		"requester_email": request.RequesterEmail,
		"hr_email":        request.HREmail,
	})
	if err != nil {
		return entities.AssetRequest{}, err
	}

	rejected, err := u.Requests.RejectRequest(ctx, ports.RejectRequestInput{
		RequestID:  request.RequestID,
		HREmail:    request.HREmail,
		RejectedAt: now,
		Event:      event,
	})
	if err != nil {
		logger.Warn("reject request failed",
			"event", "reject_request_failed",
			"module", application.ModuleName,
			"layer", "application",
			"request_id", request.RequestID,
			"error", err.Error(),
		)
		return entities.AssetRequest{}, err
	}

	logger.Info("asset request rejected",
		"event", "asset_request_rejected",
		"module", application.ModuleName,
		"layer", "application",
		"request_id", rejected.RequestID,
	)
	return rejected, nil
}
