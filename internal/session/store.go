// Package session tracks a client session's authentication state and fans
// auth events out to listeners, driving live route-guard re-evaluation.
package session

import (
	"sync"
	"time"
)

// State is the resolution state of a session.
type State int

const (
	// StateUnknown means the initial probe has not resolved yet.
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Identity is the authenticated principal carried by a session.
type Identity struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
}

// Listener receives the state after every transition. Listeners are invoked
// synchronously under the store lock, in subscription order, so events
// arrive in emission order.
type Listener func(state State, identity *Identity)

// Store holds one client session's auth state. It starts Unknown, resolves
// to Anonymous or Authenticated via the probe, and transitions on sign-in
// and sign-out events. A sign-in followed by a sign-out always leaves the
// store Anonymous; no stale identity survives.
type Store struct {
	mu       sync.Mutex
	state    State
	identity *Identity
	subs     []subscription
	nextID   int
	closed   bool
}

// subscription keeps listeners in registration order so every transition
// reaches them in the same sequence they subscribed.
type subscription struct {
	id int
	fn Listener
}

// Probe resolves the session's initial identity, typically from a token.
// A nil identity with nil error means no active session.
type Probe func() (*Identity, error)

// NewStore creates a store and resolves the initial state by running the
// probe exactly once. A probe failure resolves to Anonymous: an unreadable
// session is treated as no session.
func NewStore(probe Probe) *Store {
	s := &Store{
		state: StateUnknown,
	}

	if probe == nil {
		s.resolve(nil)
		return s
	}

	identity, err := probe()
	if err != nil {
		identity = nil
	}
	s.resolve(identity)

	return s
}

func (s *Store) resolve(identity *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if identity != nil {
		s.state = StateAuthenticated
		s.identity = identity
	} else {
		s.state = StateAnonymous
		s.identity = nil
	}
	s.notifyLocked()
}

// Current returns the state and identity at this instant.
func (s *Store) Current() (State, *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.identity
}

// SignedIn transitions the store to Authenticated with the given identity.
func (s *Store) SignedIn(identity *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.state = StateAuthenticated
	s.identity = identity
	s.notifyLocked()
}

// SignedOut transitions the store to Anonymous and drops the identity.
func (s *Store) SignedOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.state = StateAnonymous
	s.identity = nil
	s.notifyLocked()
}

// Subscribe registers a listener. The listener immediately receives the
// current state, then every subsequent transition. The initial snapshot is
// delivered under the store lock, so a concurrent transition cannot reach
// the listener before its snapshot. The returned function removes the
// listener and is safe to call more than once.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()

	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	fn(s.state, s.identity)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Close drops all listeners. Further events are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.subs = nil
}

func (s *Store) notifyLocked() {
	for _, sub := range s.subs {
		sub.fn(s.state, s.identity)
	}
}
