package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	application "assetverse/contexts/asset-management/asset-service/application"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
)

const (
	MetadataHREmail        = "hrEmail"
	MetadataRequestedSlots = "requestedSlots"
)

type StartCheckoutCommand struct {
	HREmail string
	Price   float64
	Members int
}

type StartCheckoutResult struct {
	SessionID string
	URL       string
}

type StartCheckoutUseCase struct {
	Processor  ports.PaymentProcessor
	SiteDomain string
	Logger     *slog.Logger
}

func (u StartCheckoutUseCase) Execute(ctx context.Context, cmd StartCheckoutCommand) (StartCheckoutResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.HREmail) == "" || cmd.Price <= 0 || cmd.Members <= 0 {
		return StartCheckoutResult{}, domainerrors.ErrInvalidCheckout
	}

	siteDomain := strings.TrimRight(u.SiteDomain, "/")
	session, err := u.Processor.CreateCheckoutSession(ctx, ports.CheckoutSessionInput{
		HREmail:         cmd.HREmail,
		Slots:           cmd.Members,
		UnitAmountCents: int64(math.Round(cmd.Price * 100)),
		ProductName:     fmt.Sprintf("Upgrade: %d Slots", cmd.Members),
		SuccessURL:      siteDomain + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:       siteDomain + "/dashboard/upgrade",
		Metadata: map[string]string{
			MetadataHREmail:        cmd.HREmail,
			MetadataRequestedSlots: strconv.Itoa(cmd.Members),
		},
	})
	if err != nil {
		logger.Error("checkout session creation failed",
			"event", "checkout_session_failed",
			"module", application.ModuleName,
			"layer", "application",
			"hr_email", cmd.HREmail,
			"error", err.Error(),
		)
		return StartCheckoutResult{}, err
	}

	logger.Info("checkout session created",
		"event", "checkout_session_created",
		"module", application.ModuleName,
		"layer", "application",
		"hr_email", cmd.HREmail,
		"session_id", session.SessionID,
		"slots", cmd.Members,
	)
	return StartCheckoutResult{SessionID: session.SessionID, URL: session.URL}, nil
}
