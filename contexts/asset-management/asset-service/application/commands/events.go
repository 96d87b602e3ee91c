package commands

import (
	"context"
	"encoding/json"
	"time"

	"assetverse/contexts/asset-management/asset-service/ports"
	contractsv1 "assetverse/contracts/gen/events/v1"
)

const sourceService = "asset-service"

const (
	EventRequestApproved   = "asset_request.approved"
	EventRequestRejected   = "asset_request.rejected"
	EventRequestReturned   = "asset_request.returned"
	EventAffiliationAdded  = "affiliation.added"
	EventAffiliationRemove = "affiliation.removed"
	EventPaymentConfirmed  = "payment.confirmed"
)

// newOutboxMessage builds the outbox row for one domain event. The row is
// handed to the repository so it commits with the state change.
func newOutboxMessage(
	ctx context.Context,
	ids ports.IDGenerator,
	eventType string,
	partitionKeyPath string,
	partitionKey string,
	now time.Time,
	data map[string]any,
) (ports.OutboxMessage, error) {
	eventID, err := ids.NewID(ctx)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	envelope, err := contractsv1.NewEnvelope(eventID, eventType, sourceService, partitionKeyPath, partitionKey, now, data)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		OutboxID:     eventID,
		EventType:    eventType,
		PartitionKey: partitionKey,
		Payload:      payload,
		CreatedAt:    now.UTC(),
	}, nil
}

func resolveNow(clock ports.Clock) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock.Now().UTC()
}
