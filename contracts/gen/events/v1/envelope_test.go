package v1

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewEnvelopeRoundTripsData(t *testing.T) {
	occurred := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	envelope, err := NewEnvelope("evt-1", "asset_request.approved", "asset-service", "request_id", "req-1", occurred, map[string]string{
		"request_id": "req-1",
	})
	if err != nil {
		t.Fatalf("new envelope: %v", err)
	}
	if envelope.SchemaVersion != 1 {
		t.Fatalf("expected schema version 1, got %d", envelope.SchemaVersion)
	}
	if envelope.OccurredAt.Location() != time.UTC {
		t.Fatalf("expected utc timestamp, got %s", envelope.OccurredAt.Location())
	}

	var data map[string]string
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data["request_id"] != "req-1" {
		t.Fatalf("unexpected data: %+v", data)
	}
}
