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

type ReturnRequestCommand struct {
	RequestID   string
	CallerEmail string
}

type ReturnRequestUseCase struct {
	Requests    ports.RequestRepository
	Assets      ports.AssetRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u ReturnRequestUseCase) Execute(ctx context.Context, cmd ReturnRequestCommand) (entities.AssetRequest, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.RequestID) == "" || strings.TrimSpace(cmd.CallerEmail) == "" {
		return entities.AssetRequest{}, domainerrors.ErrInvalidRequest
	}

	request, err := u.Requests.GetRequest(ctx, cmd.RequestID)
	if err != nil {
		return entities.AssetRequest{}, err
	}
	asset, err := u.Assets.GetAsset(ctx, request.AssetID)
	if err != nil {
		return entities.AssetRequest{}, err
	}
	if err := services.EnsureCanReturn(request, asset, cmd.CallerEmail); err != nil {
		logger.Warn("return request rejected",
			"event", "return_request_rejected",
			"module", application.ModuleName,
			"layer", "application",
			"request_id", request.RequestID,
			"caller_email", cmd.CallerEmail,
			"error", err.Error(),
		)
		return entities.AssetRequest{}, err
	}

	now := resolveNow(u.Clock)
	event, err := newOutboxMessage(ctx, u.IDGenerator, EventRequestReturned, "request_id", request.RequestID, now, map[string]any{
		"request_id":      request.RequestID,
		"asset_id":        request.AssetID,
		"requester_email": request.RequesterEmail,
		"hr_email":        request.HREmail,
	})
	if err != nil {
		return entities.AssetRequest{}, err
	}

	returned, err := u.Requests.ReturnRequest(ctx, ports.ReturnRequestInput{
		RequestID:   request.RequestID,
		CallerEmail: entities.NormalizeEmail(cmd.CallerEmail),
		ReturnedAt:  now,
		Event:       event,
	})
	if err != nil {
		logger.Error("return request failed",
			"event", "return_request_failed",
			"module", application.ModuleName,
			"layer", "application",
			"request_id", request.RequestID,
			"error", err.Error(),
		)
		return entities.AssetRequest{}, err
	}

	logger.Info("asset returned",
		"event", "asset_request_returned",
		"module", application.ModuleName,
		"layer", "application",
		"request_id", returned.RequestID,
		"asset_id", returned.AssetID,
	)
	return returned, nil
}
