package messaging

import (
	"context"
	"testing"
	"time"

	"assetverse/contexts/asset-management/asset-service/ports"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus(nil)
	received := make(chan ports.EventEnvelope, 1)
	if err := bus.Subscribe(ctx, "assetverse.events", "test-cg", func(_ context.Context, event ports.EventEnvelope) error {
		received <- event
		return nil
	}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := bus.Publish(ctx, "assetverse.events", ports.EventEnvelope{EventID: "evt-1", EventType: "affiliation.added"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case event := <-received:
		if event.EventID != "evt-1" {
			t.Fatalf("unexpected event %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for event")
	}
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	bus := NewBus(nil)
	if err := bus.Publish(context.Background(), "nobody", ports.EventEnvelope{EventID: "evt-2"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
}
