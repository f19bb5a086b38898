package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fitposture/fitposture/internal/ctxkeys"
	"github.com/fitposture/fitposture/internal/render"
	"github.com/fitposture/fitposture/internal/session"
)

type SessionHandler struct {
	hub *session.Hub
}

func NewSessionHandler(hub *session.Hub) *SessionHandler {
	return &SessionHandler{hub: hub}
}

// Current reports the caller's session state. The auth middleware has
// already resolved the cookie, so this is a pure read.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	store := session.NewStore(func() (*session.Identity, error) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			return nil, nil
		}
		return &session.Identity{
			ID:               user.ID,
			Email:            user.Email,
			EmailConfirmedAt: user.EmailConfirmedAt,
		}, nil
	})
	defer store.Close()

	state, identity := store.Current()
	render.JSON(w, http.StatusOK, map[string]any{
		"state":    state.String(),
		"identity": identity,
	})
}

// Events streams the user's auth events over SSE so other tabs and devices
// can re-evaluate route guards without polling.
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	if user == nil {
		render.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		render.Error(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, cancel := h.hub.Subscribe(user.ID)
	defer cancel()

	slog.Info("session event stream opened", "user_id", user.ID)

	// Initial event so the client knows the stream is live.
	writeSSE(w, session.Event{
		Type: session.EventSignedIn,
		Identity: &session.Identity{
			ID:               user.ID,
			Email:            user.Email,
			EmailConfirmedAt: user.EmailConfirmedAt,
		},
	})
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			slog.Info("session event stream closed", "user_id", user.ID)
			return
		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		case event, ok := <-events:
			if !ok {
				return
			}
			writeSSE(w, event)
			flusher.Flush()
			if event.Type == session.EventSignedOut {
				return
			}
		}
	}
}

func writeSSE(w http.ResponseWriter, event session.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal session event", "error", err)
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data)
}
