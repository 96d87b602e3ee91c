package commands

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

type ConfirmPaymentCommand struct {
	SessionID string
}

type ConfirmPaymentResult struct {
	AlreadyProcessed bool
	NewLimit         int
	Payment          entities.Payment
}

type ConfirmPaymentUseCase struct {
	Processor   ports.PaymentProcessor
	Payments    ports.PaymentRepository
	Users       ports.UserRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute confirms a paid checkout exactly once per payment intent:
// 1) processor verification of the session
// 2) ledger lookup by transaction id
// 3) payment insert + limit increase in one transaction, where a unique
// violation from a concurrent confirmation counts as already processed.
func (u ConfirmPaymentUseCase) Execute(ctx context.Context, cmd ConfirmPaymentCommand) (ConfirmPaymentResult, error) {
	logger := application.ResolveLogger(u.Logger)
	sessionID := strings.TrimSpace(cmd.SessionID)
	if sessionID == "" {
		return ConfirmPaymentResult{}, domainerrors.ErrSessionIDMissing
	}

	session, err := u.Processor.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		logger.Error("checkout session lookup failed",
			"event", "confirm_payment_session_lookup_failed",
			"module", application.ModuleName,
			"layer", "application",
			"session_id", sessionID,
			"error", err.Error(),
		)
		return ConfirmPaymentResult{}, err
	}
	if !session.Paid {
		return ConfirmPaymentResult{}, domainerrors.ErrPaymentNotCompleted
	}

	addedSlots, err := strconv.Atoi(strings.TrimSpace(session.Metadata[MetadataRequestedSlots]))
	if err != nil || addedSlots <= 0 {
		return ConfirmPaymentResult{}, domainerrors.ErrInvalidSlotCount
	}
	hrEmail := entities.NormalizeEmail(session.Metadata[MetadataHREmail])
	transactionID := strings.TrimSpace(session.PaymentIntentID)
	if transactionID == "" {
		return ConfirmPaymentResult{}, domainerrors.ErrPaymentNotCompleted
	}

	if existing, found, err := u.Payments.GetPaymentByTransactionID(ctx, transactionID); err != nil {
		return ConfirmPaymentResult{}, err
	} else if found {
		return u.alreadyProcessed(logger, existing), nil
	}

	if _, err := u.Users.GetUserByEmail(ctx, hrEmail); err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return ConfirmPaymentResult{}, domainerrors.ErrHRNotFound
		}
		return ConfirmPaymentResult{}, err
	}

	now := resolveNow(u.Clock)
	paymentID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return ConfirmPaymentResult{}, err
	}
	payment := entities.Payment{
		PaymentID:     paymentID,
		HREmail:       hrEmail,
		TransactionID: transactionID,
		SessionID:     sessionID,
		Amount:        float64(session.AmountTotalCents) / 100,
		AddedSlots:    addedSlots,
		Date:          now,
	}
	event, err := newOutboxMessage(ctx, u.IDGenerator, EventPaymentConfirmed, "hr_email", hrEmail, now, map[string]any{
		"payment_id":     payment.PaymentID,
		"transaction_id": payment.TransactionID,
		"hr_email":       payment.HREmail,
		"added_slots":    payment.AddedSlots,
		"amount":         payment.Amount,
	})
	if err != nil {
		return ConfirmPaymentResult{}, err
	}

	hr, err := u.Payments.ApplyPackageUpgrade(ctx, ports.ApplyUpgradeInput{
		Payment: payment,
		Event:   event,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicatePayment) {
			return u.alreadyProcessed(logger, payment), nil
		}
		logger.Error("confirm payment failed",
			"event", "confirm_payment_failed",
			"module", application.ModuleName,
			"layer", "application",
			"transaction_id", transactionID,
			"error", err.Error(),
		)
		return ConfirmPaymentResult{}, err
	}

	logger.Info("package limit upgraded",
		"event", "payment_confirmed",
		"module", application.ModuleName,
		"layer", "application",
		"hr_email", hr.Email,
		"transaction_id", transactionID,
		"added_slots", addedSlots,
		"new_limit", hr.PackageLimit,
	)
	return ConfirmPaymentResult{NewLimit: hr.PackageLimit, Payment: payment}, nil
}

func (u ConfirmPaymentUseCase) alreadyProcessed(logger *slog.Logger, payment entities.Payment) ConfirmPaymentResult {
	logger.Info("payment already processed",
		"event", "confirm_payment_replayed",
		"module", application.ModuleName,
		"layer", "application",
		"transaction_id", payment.TransactionID,
	)
	return ConfirmPaymentResult{AlreadyProcessed: true, Payment: payment}
}
