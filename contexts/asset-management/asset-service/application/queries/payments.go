package queries

import (
	"context"
	"log/slog"

	"assetverse/contexts/asset-management/asset-service/domain/entities"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type PaymentHistoryUseCase struct {
	Payments ports.PaymentRepository
	Logger   *slog.Logger
}

// Execute lists the HR account's payments, newest first.
func (u PaymentHistoryUseCase) Execute(ctx context.Context, hrEmail string) ([]entities.Payment, error) {
	return u.Payments.ListPaymentsByHR(ctx, entities.NormalizeEmail(hrEmail))
}
