package session

import (
	"log/slog"
	"sync"
)

// EventType identifies an auth event published on the hub.
type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)

// Event is broadcast to every open session of a user when their auth state
// changes, so other tabs and devices can re-evaluate route guards.
type Event struct {
	Type     EventType `json:"type"`
	Identity *Identity `json:"identity,omitempty"`
}

type subscriber struct {
	userID string
	ch     chan Event
}

// Hub is the process-wide registry of session subscribers keyed by user.
// Auth handlers publish sign-in/sign-out; event-stream connections subscribe.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[*subscriber]struct{}),
	}
}

// Subscribe registers for a user's auth events. The returned cancel closes
// the channel and removes the subscription.
func (h *Hub) Subscribe(userID string) (<-chan Event, func()) {
	sub := &subscriber{
		userID: userID,
		// Buffered so a slow consumer does not block the publisher.
		ch: make(chan Event, 8),
	}

	h.mu.Lock()
	set, ok := h.subs[userID]
	if !ok {
		set = make(map[*subscriber]struct{})
		h.subs[userID] = set
	}
	set[sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			set, ok := h.subs[userID]
			if ok {
				delete(set, sub)
				if len(set) == 0 {
					delete(h.subs, userID)
				}
			}
			h.mu.Unlock()
			close(sub.ch)
		})
	}

	return sub.ch, cancel
}

// Publish delivers an event to every subscriber of the user. Subscribers
// whose buffers are full miss the event rather than blocking auth flows.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[userID] {
		select {
		case sub.ch <- event:
		default:
			slog.Warn("session hub subscriber buffer full, dropping event",
				"user_id", userID, "event", event.Type)
		}
	}
}

// Subscribers reports the number of open subscriptions for a user.
func (h *Hub) Subscribers(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}
