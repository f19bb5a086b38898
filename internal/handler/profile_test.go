package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitposture/fitposture/internal/ctxkeys"
	"github.com/fitposture/fitposture/internal/model"
	"github.com/fitposture/fitposture/internal/repository"
	"github.com/fitposture/fitposture/internal/service"
)

type fakeProfileRepo struct {
	profiles map[string]*model.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*model.Profile)}
}

func (r *fakeProfileRepo) ByID(id string) (*model.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) Create(profile *model.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) Upsert(profile *model.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func profileRequest(userID string) *http.Request {
	r := httptest.NewRequest("GET", "/api/profile", nil)
	ctx := ctxkeys.WithUser(r.Context(), &model.User{ID: userID, Email: "jo@example.com"})
	return r.WithContext(ctx)
}

func TestProfileShowMissingRowSignalsOnboarding(t *testing.T) {
	h := NewProfileHandler(service.NewProfileService(newFakeProfileRepo()))

	w := httptest.NewRecorder()
	h.Show(w, profileRequest("u1"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for missing profile, got %d", w.Code)
	}

	var body struct {
		Profile            *model.Profile `json:"profile"`
		OnboardingRequired bool           `json:"onboarding_required"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Profile != nil {
		t.Errorf("expected null profile, got %+v", body.Profile)
	}
	if !body.OnboardingRequired {
		t.Error("expected onboarding_required true for missing profile")
	}
}

func TestProfileShowExistingRow(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["u1"] = &model.Profile{ID: "u1", FullName: "Kim Lee"}
	h := NewProfileHandler(service.NewProfileService(repo))

	w := httptest.NewRecorder()
	h.Show(w, profileRequest("u1"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Profile            *model.Profile `json:"profile"`
		OnboardingRequired bool           `json:"onboarding_required"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Profile == nil || body.Profile.FullName != "Kim Lee" {
		t.Fatalf("expected stored profile in response, got %+v", body.Profile)
	}
	if !body.OnboardingRequired {
		t.Error("expected onboarding_required true while wizard steps remain")
	}
}
