package session

import (
	"errors"
	"testing"
)

func TestNewStoreProbeAuthenticated(t *testing.T) {
	store := NewStore(func() (*Identity, error) {
		return &Identity{ID: "u1", Email: "jo@example.com"}, nil
	})

	state, identity := store.Current()
	if state != StateAuthenticated {
		t.Fatalf("expected authenticated, got %s", state)
	}
	if identity == nil || identity.ID != "u1" {
		t.Fatalf("expected identity u1, got %+v", identity)
	}
}

func TestNewStoreProbeAnonymous(t *testing.T) {
	store := NewStore(func() (*Identity, error) {
		return nil, nil
	})

	state, identity := store.Current()
	if state != StateAnonymous {
		t.Fatalf("expected anonymous, got %s", state)
	}
	if identity != nil {
		t.Fatalf("expected nil identity, got %+v", identity)
	}
}

func TestNewStoreProbeFailureResolvesAnonymous(t *testing.T) {
	store := NewStore(func() (*Identity, error) {
		return nil, errors.New("token store unreachable")
	})

	state, _ := store.Current()
	if state != StateAnonymous {
		t.Fatalf("probe failure must resolve anonymous, got %s", state)
	}
}

func TestSignInThenSignOutEndsAnonymous(t *testing.T) {
	store := NewStore(nil)

	store.SignedIn(&Identity{ID: "u1", Email: "jo@example.com"})
	store.SignedOut()

	state, identity := store.Current()
	if state != StateAnonymous {
		t.Fatalf("expected anonymous after sign-out, got %s", state)
	}
	if identity != nil {
		t.Fatalf("stale identity survived sign-out: %+v", identity)
	}
}

func TestSubscriberObservesTransitionsInOrder(t *testing.T) {
	store := NewStore(nil)

	var states []State
	unsubscribe := store.Subscribe(func(state State, _ *Identity) {
		states = append(states, state)
	})
	defer unsubscribe()

	store.SignedIn(&Identity{ID: "u1"})
	store.SignedOut()
	store.SignedIn(&Identity{ID: "u1"})

	want := []State{StateAnonymous, StateAuthenticated, StateAnonymous, StateAuthenticated}
	if len(states) != len(want) {
		t.Fatalf("expected %d notifications, got %d", len(want), len(states))
	}
	for i, s := range want {
		if states[i] != s {
			t.Errorf("notification %d: expected %s, got %s", i, s, states[i])
		}
	}
}

func TestListenersNotifiedInSubscriptionOrder(t *testing.T) {
	store := NewStore(nil)

	const listeners = 10
	var order []int
	for i := 0; i < listeners; i++ {
		i := i
		unsubscribe := store.Subscribe(func(state State, _ *Identity) {
			if state == StateAuthenticated {
				order = append(order, i)
			}
		})
		defer unsubscribe()
	}

	store.SignedIn(&Identity{ID: "u1"})

	if len(order) != listeners {
		t.Fatalf("expected %d notifications, got %d", listeners, len(order))
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("notification order %v does not match subscription order", order)
		}
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	store := NewStore(nil)

	count := 0
	unsubscribe := store.Subscribe(func(State, *Identity) {
		count++
	})

	store.SignedIn(&Identity{ID: "u1"})
	unsubscribe()
	unsubscribe() // idempotent
	store.SignedOut()

	// Initial notification plus one sign-in.
	if count != 2 {
		t.Fatalf("expected 2 notifications, got %d", count)
	}
}

func TestClosedStoreDropsEvents(t *testing.T) {
	store := NewStore(nil)
	store.Close()

	store.SignedIn(&Identity{ID: "u1"})

	state, _ := store.Current()
	if state != StateAnonymous {
		t.Fatalf("closed store must ignore events, got %s", state)
	}
}
