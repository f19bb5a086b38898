package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitposture/fitposture/internal/ctxkeys"
	"github.com/fitposture/fitposture/internal/model"
)

func okHandler(called *bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}
}

func TestRequireAuthAnonymousBrowserRedirects(t *testing.T) {
	called := false
	handler := RequireAuth(okHandler(&called))

	r := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	if called {
		t.Fatal("handler must not run for anonymous user")
	}
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/signin" {
		t.Fatalf("expected redirect to /signin, got %q", loc)
	}
}

func TestRequireAuthAnonymousAPIGetsJSON401(t *testing.T) {
	called := false
	handler := RequireAuth(okHandler(&called))

	r := httptest.NewRequest("GET", "/api/profile", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	if called {
		t.Fatal("handler must not run for anonymous user")
	}
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["redirect"] != "/signin" {
		t.Fatalf("expected redirect hint /signin, got %q", body["redirect"])
	}
}

func TestRequireAuthAuthenticatedPasses(t *testing.T) {
	called := false
	handler := RequireAuth(okHandler(&called))

	r := httptest.NewRequest("GET", "/api/profile", nil)
	ctx := ctxkeys.WithUser(r.Context(), &model.User{ID: "u1", Email: "jo@example.com"})
	w := httptest.NewRecorder()
	handler(w, r.WithContext(ctx))

	if !called {
		t.Fatal("handler must run for authenticated user")
	}
}

func TestRequireGuestAuthenticatedRedirectsToProfile(t *testing.T) {
	called := false
	handler := RequireGuest(okHandler(&called))

	r := httptest.NewRequest("GET", "/signin", nil)
	ctx := ctxkeys.WithUser(r.Context(), &model.User{ID: "u1", Email: "jo@example.com"})
	w := httptest.NewRecorder()
	handler(w, r.WithContext(ctx))

	if called {
		t.Fatal("handler must not run for authenticated user")
	}
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/profile" {
		t.Fatalf("expected redirect to /profile, got %q", loc)
	}
}

func TestRequireGuestAnonymousPasses(t *testing.T) {
	called := false
	handler := RequireGuest(okHandler(&called))

	r := httptest.NewRequest("GET", "/signin", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	if !called {
		t.Fatal("handler must run for anonymous user")
	}
}
