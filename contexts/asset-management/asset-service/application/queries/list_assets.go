package queries

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

const (
	SortDateAdded         = "dateAdded"
	SortProductName       = "productName"
	SortProductQuantity   = "productQuantity"
	SortAvailableQuantity = "availableQuantity"
	SortProductType       = "productType"
)

type ListAssetsQuery struct {
	HREmail string
	Page    int
	Limit   int
	Search  string
	Type    string
	Sort    string
	Order   string
}

type ListAssetsResult struct {
	Items       []entities.Asset
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

type ListAssetsUseCase struct {
	Assets ports.AssetRepository
	Logger *slog.Logger
}

func (u ListAssetsUseCase) Execute(ctx context.Context, query ListAssetsQuery) (ListAssetsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(query.HREmail) == "" {
		return ListAssetsResult{}, domainerrors.ErrInvalidRequest
	}
	productType, err := parseTypeFilter(query.Type)
	if err != nil {
		return ListAssetsResult{}, err
	}
	page, limit := services.NormalizePage(query.Page, query.Limit)

	items, total, err := u.Assets.ListAssets(ctx, ports.AssetListFilter{
		HREmail:   entities.NormalizeEmail(query.HREmail),
		Search:    strings.TrimSpace(query.Search),
		Type:      productType,
		SortField: normalizeSortField(query.Sort),
		SortDesc:  !strings.EqualFold(strings.TrimSpace(query.Order), "asc"),
		Offset:    (page - 1) * limit,
		Limit:     limit,
	})
	if err != nil {
		logger.Error("list assets failed",
			"event", "list_assets_failed",
			"module", application.ModuleName,
			"layer", "application",
			"error", err.Error(),
		)
		return ListAssetsResult{}, err
	}

	return ListAssetsResult{
		Items:       items,
		TotalCount:  total,
		TotalPages:  services.TotalPages(total, limit),
		CurrentPage: page,
	}, nil
}

type AvailableAssetsQuery struct {
	Search string
	Type   string
}

// ListAvailableAssetsUseCase lists in-stock assets across every company.
type ListAvailableAssetsUseCase struct {
	Assets ports.AssetRepository
	Logger *slog.Logger
}

func (u ListAvailableAssetsUseCase) Execute(ctx context.Context, query AvailableAssetsQuery) ([]entities.Asset, error) {
	productType, err := parseTypeFilter(query.Type)
	if err != nil {
		return nil, err
	}
	items, _, err := u.Assets.ListAssets(ctx, ports.AssetListFilter{
		Search:      strings.TrimSpace(query.Search),
		Type:        productType,
		OnlyInStock: true,
		SortField:   SortDateAdded,
		SortDesc:    true,
	})
	return items, err
}

func parseTypeFilter(value string) (entities.ProductType, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return "", nil
	}
	productType, ok := entities.ParseProductType(value)
	if !ok {
		return "", domainerrors.ErrInvalidListFilter
	}
	return productType, nil
}

func normalizeSortField(value string) string {
	switch strings.TrimSpace(value) {
	case SortProductName, SortProductQuantity, SortAvailableQuantity, SortProductType:
		return strings.TrimSpace(value)
	default:
		return SortDateAdded
	}
}
