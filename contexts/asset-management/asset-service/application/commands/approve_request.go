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

type ApproveRequestCommand struct {
	RequestID string
	HREmail   string
}

type ApproveRequestResult struct {
	Request            entities.AssetRequest
	Affiliation        entities.Affiliation
	AffiliationCreated bool
}

type ApproveRequestUseCase struct {
	Requests    ports.RequestRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute runs the approval workflow:
// 1) request lookup and ownership check
// 2) atomic capacity check, approval, stock decrement, affiliation and outbox
// write inside the repository transaction.
func (u ApproveRequestUseCase) Execute(ctx context.Context, cmd ApproveRequestCommand) (ApproveRequestResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.RequestID) == "" || strings.TrimSpace(cmd.HREmail) == "" {
		return ApproveRequestResult{}, domainerrors.ErrInvalidRequest
	}

	request, err := u.Requests.GetRequest(ctx, cmd.RequestID)
	if err != nil {
		return ApproveRequestResult{}, err
	}
	if err := services.EnsureOwnedByHR(request, cmd.HREmail); err != nil {
		logger.Warn("approve request rejected, foreign request",
			"event", "approve_request_forbidden",
			"module", application.ModuleName,
			"layer", "application",
			"request_id", cmd.RequestID,
			"hr_email", cmd.HREmail,
		)
		return ApproveRequestResult{}, err
	}

	now := resolveNow(u.Clock)
	affiliationID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return ApproveRequestResult{}, err
	}
	event, err := newOutboxMessage(ctx, u.IDGenerator, EventRequestApproved, "request_id", request.RequestID, now, map[string]any{
		"request_id":      request.RequestID,
		"asset_id":        request.AssetID,
		"requester_email": request.RequesterEmail,
		"hr_email":        request.HREmail,
	})
	if err != nil {
		return ApproveRequestResult{}, err
	}

	result, err := u.Requests.ApproveRequest(ctx, ports.ApproveRequestInput{
		RequestID:     request.RequestID,
		HREmail:       entities.NormalizeEmail(cmd.HREmail),
		AffiliationID: affiliationID,
		ApprovedAt:    now,
		Event:         event,
	})
	if err != nil {
		logger.Warn("approve request failed",
			"event", "approve_request_failed",
			"module", application.ModuleName,
			"layer", "application",
			"request_id", request.RequestID,
			"hr_email", cmd.HREmail,
			"error", err.Error(),
		)
		return ApproveRequestResult{}, err
	}

	logger.Info("asset request approved",
		"event", "asset_request_approved",
		"module", application.ModuleName,
		"layer", "application",
		"request_id", result.Request.RequestID,
		"requester_email", result.Request.RequesterEmail,
		"affiliation_created", result.AffiliationCreated,
	)
	return ApproveRequestResult{
		Request:            result.Request,
		Affiliation:        result.Affiliation,
		AffiliationCreated: result.AffiliationCreated,
	}, nil
}
