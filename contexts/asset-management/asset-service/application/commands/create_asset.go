package commands

import (
	"context"
	"log/slog"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type CreateAssetCommand struct {
	HREmail         string
	CompanyName     string
	ProductName     string
	ProductImage    string
	ProductType     string
	ProductQuantity int
}

type CreateAssetUseCase struct {
	Assets      ports.AssetRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (entities.Asset, error) {
	logger := application.ResolveLogger(u.Logger)
	productType, ok := entities.ParseProductType(cmd.ProductType)
	if !ok {
		return entities.Asset{}, domainerrors.ErrMissingAssetFields
	}

	assetID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Asset{}, err
	}
	asset, err := entities.NewAsset(
		assetID,
		cmd.ProductName,
		cmd.ProductImage,
		productType,
		cmd.ProductQuantity,
		cmd.HREmail,
		cmd.CompanyName,
		resolveNow(u.Clock),
	)
	if err != nil {
		return entities.Asset{}, err
	}

	if err := u.Assets.CreateAsset(ctx, asset); err != nil {
		logger.Error("create asset failed",
			"event", "create_asset_failed",
			"module", application.ModuleName,
			"layer", "application",
			"hr_email", asset.HREmail,
			"error", err.Error(),
		)
		return entities.Asset{}, err
	}

	logger.Info("asset created",
		"event", "asset_created",
		"module", application.ModuleName,
		"layer", "application",
		"asset_id", asset.AssetID,
		"hr_email", asset.HREmail,
		"product_type", asset.ProductType,
		"quantity", asset.ProductQuantity,
	)
	return asset, nil
}
