package commands

import (
	"context"
	"log/slog"
	"strings"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type SubmitRequestCommand struct {
	AssetID        string
	RequesterEmail string
	RequesterName  string
	Note           string
}

type SubmitRequestUseCase struct {
	Assets      ports.AssetRepository
	Requests    ports.RequestRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u SubmitRequestUseCase) Execute(ctx context.Context, cmd SubmitRequestCommand) (entities.AssetRequest, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.AssetID) == "" || strings.TrimSpace(cmd.RequesterEmail) == "" {
		return entities.AssetRequest{}, domainerrors.ErrInvalidRequest
	}

	asset, err := u.Assets.GetAsset(ctx, cmd.AssetID)
	if err != nil {
		return entities.AssetRequest{}, err
	}
	if !asset.InStock() {
		logger.Warn("submit request rejected, asset out of stock",
			"event", "submit_request_out_of_stock",
			"module", application.ModuleName,
			"layer", "application",
			"asset_id", asset.AssetID,
		)
		return entities.AssetRequest{}, domainerrors.ErrAssetOutOfStock
	}

	requestID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.AssetRequest{}, err
	}
	request, err := entities.NewAssetRequest(
		requestID,
		asset,
		cmd.RequesterEmail,
		cmd.RequesterName,
		cmd.Note,
		resolveNow(u.Clock),
	)
	if err != nil {
		return entities.AssetRequest{}, err
	}
	if err := u.Requests.CreateRequest(ctx, request); err != nil {
		logger.Error("submit request failed",
			"event", "submit_request_failed",
			"module", application.ModuleName,
			"layer", "application",
			"asset_id", asset.AssetID,
			"error", err.Error(),
		)
		return entities.AssetRequest{}, err
	}

	logger.Info("asset request submitted",
		"event", "asset_request_submitted",
		"module", application.ModuleName,
		"layer", "application",
		"request_id", request.RequestID,
		"asset_id", request.AssetID,
		"requester_email", request.RequesterEmail,
		"hr_email", request.HREmail,
	)
	return request, nil
}
