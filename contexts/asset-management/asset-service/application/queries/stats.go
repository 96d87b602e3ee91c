package queries

import (
	"context"
	"log/slog"
	"time"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	"assetverse/contexts/asset-management/asset-service/ports"
)

const hrStatsPendingLimit = 5

type EmployeeStats struct {
	PendingRequests []entities.AssetRequest
	MonthlyRequests []entities.AssetRequest
	Affiliation     *entities.Affiliation
}

type EmployeeStatsUseCase struct {
	Requests     ports.RequestRepository
	Affiliations ports.AffiliationRepository
	Clock        ports.Clock
	Logger       *slog.Logger
}

func (u EmployeeStatsUseCase) Execute(ctx context.Context, email string) (EmployeeStats, error) {
	email = entities.NormalizeEmail(email)
	now := time.Now().UTC()
	if u.Clock != nil {
		now = u.Clock.Now().UTC()
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	pending, err := u.Requests.ListRequests(ctx, ports.RequestListFilter{
		RequesterEmail: email,
		Status:         entities.RequestStatusPending,
	})
	if err != nil {
		return EmployeeStats{}, err
	}
	monthly, err := u.Requests.ListRequests(ctx, ports.RequestListFilter{
		RequesterEmail:  email,
		RequestedFrom:   monthStart,
		RequestedBefore: monthStart.AddDate(0, 1, 0),
	})
	if err != nil {
		return EmployeeStats{}, err
	}

	stats := EmployeeStats{PendingRequests: pending, MonthlyRequests: monthly}
	affiliation, found, err := u.Affiliations.FindAffiliation(ctx, email)
	if err != nil {
		return EmployeeStats{}, err
	}
	if found {
		stats.Affiliation = &affiliation
	}
	return stats, nil
}

type PieSlice struct {
	Name  string
	Value int
}

type HRStats struct {
	PieData         []PieSlice
	PendingRequests []entities.AssetRequest
	TotalRequests   int
}

type HRStatsUseCase struct {
	Assets   ports.AssetRepository
	Requests ports.RequestRepository
	Logger   *slog.Logger
}

func (u HRStatsUseCase) Execute(ctx context.Context, hrEmail string) (HRStats, error) {
	logger := application.ResolveLogger(u.Logger)
	hrEmail = entities.NormalizeEmail(hrEmail)

	counts, err := u.Assets.CountAssetsByType(ctx, hrEmail)
	if err != nil {
		logger.Error("hr stats asset count failed",
			"event", "hr_stats_asset_count_failed",
			"module", application.ModuleName,
			"layer", "application",
			"error", err.Error(),
		)
		return HRStats{}, err
	}
	pending, err := u.Requests.ListRequests(ctx, ports.RequestListFilter{
		HREmail: hrEmail,
		Status:  entities.RequestStatusPending,
		Limit:   hrStatsPendingLimit,
	})
	if err != nil {
		return HRStats{}, err
	}
	total, err := u.Requests.CountRequests(ctx, ports.RequestListFilter{HREmail: hrEmail})
	if err != nil {
		return HRStats{}, err
	}

	return HRStats{
		PieData: []PieSlice{
			{Name: string(entities.ProductTypeReturnable), Value: counts[entities.ProductTypeReturnable]},
			{Name: string(entities.ProductTypeNonReturnable), Value: counts[entities.ProductTypeNonReturnable]},
		},
		PendingRequests: pending,
		TotalRequests:   total,
	}, nil
}
