package queries

import (
	"context"
	"log/slog"
	"strings"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type CompanyRequestsQuery struct {
	HREmail string
	Search  string
	Status  string
}

// ListCompanyRequestsUseCase lists requests addressed to one HR account,
// searchable by requester name or email.
type ListCompanyRequestsUseCase struct {
	Requests ports.RequestRepository
	Logger   *slog.Logger
}

func (u ListCompanyRequestsUseCase) Execute(ctx context.Context, query CompanyRequestsQuery) ([]entities.AssetRequest, error) {
	status, err := parseStatusFilter(query.Status)
	if err != nil {
		return nil, err
	}
	items, err := u.Requests.ListRequests(ctx, ports.RequestListFilter{
		HREmail:         entities.NormalizeEmail(query.HREmail),
		RequesterSearch: strings.TrimSpace(query.Search),
		Status:          status,
	})
	if err != nil {
		application.ResolveLogger(u.Logger).Error("list company requests failed",
			"event", "list_company_requests_failed",
			"module", application.ModuleName,
			"layer", "application",
			"error", err.Error(),
		)
		return nil, err
	}
	return items, nil
}

type MyRequestsQuery struct {
	RequesterEmail string
	Search         string
	Status         string
}

// ListMyRequestsUseCase lists the caller's requests, searchable by asset name.
type ListMyRequestsUseCase struct {
	Requests ports.RequestRepository
	Logger   *slog.Logger
}

func (u ListMyRequestsUseCase) Execute(ctx context.Context, query MyRequestsQuery) ([]entities.AssetRequest, error) {
	status, err := parseStatusFilter(query.Status)
	if err != nil {
		return nil, err
	}
	return u.Requests.ListRequests(ctx, ports.RequestListFilter{
		RequesterEmail: entities.NormalizeEmail(query.RequesterEmail),
		AssetSearch:    strings.TrimSpace(query.Search),
		Status:         status,
	})
}

func parseStatusFilter(value string) (entities.RequestStatus, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return "", nil
	}
	status, ok := entities.ParseRequestStatus(value)
	if !ok {
		return "", domainerrors.ErrInvalidListFilter
	}
	return status, nil
}
