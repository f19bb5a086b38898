package session

import (
	"testing"
)

func TestHubPublishReachesSubscribers(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("u1")
	defer cancel()

	hub.Publish("u1", Event{Type: EventSignedOut})

	select {
	case event := <-ch:
		if event.Type != EventSignedOut {
			t.Fatalf("expected signed_out, got %s", event.Type)
		}
	default:
		t.Fatal("expected event on subscriber channel")
	}
}

func TestHubPublishScopedToUser(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("u1")
	defer cancel()

	hub.Publish("u2", Event{Type: EventSignedIn})

	select {
	case event := <-ch:
		t.Fatalf("u1 received u2's event: %s", event.Type)
	default:
	}
}

func TestHubCancelRemovesSubscription(t *testing.T) {
	hub := NewHub()

	_, cancel := hub.Subscribe("u1")
	if hub.Subscribers("u1") != 1 {
		t.Fatal("expected one subscriber")
	}

	cancel()
	cancel() // idempotent

	if hub.Subscribers("u1") != 0 {
		t.Fatal("expected subscription removed after cancel")
	}

	// Publishing with no subscribers must not panic.
	hub.Publish("u1", Event{Type: EventSignedOut})
}

func TestHubFullBufferDoesNotBlockPublisher(t *testing.T) {
	hub := NewHub()

	_, cancel := hub.Subscribe("u1")
	defer cancel()

	// More events than the channel buffers; Publish must never block.
	for i := 0; i < 50; i++ {
		hub.Publish("u1", Event{Type: EventSignedIn})
	}
}
