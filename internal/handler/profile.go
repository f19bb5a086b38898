package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fitposture/fitposture/internal/ctxkeys"
	"github.com/fitposture/fitposture/internal/render"
	"github.com/fitposture/fitposture/internal/repository"
	"github.com/fitposture/fitposture/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Show returns the caller's profile. A missing row is a normal first-run
// signal directing the client into onboarding, not a failure.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	profile, err := h.profileService.ByUserID(user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			render.JSON(w, http.StatusOK, map[string]any{
				"profile":             nil,
				"onboarding_required": true,
			})
			return
		}
		slog.Error("failed to load profile", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	render.JSON(w, http.StatusOK, map[string]any{
		"profile":             profile,
		"onboarding_required": !profile.OnboardingComplete(),
	})
}

// Save upserts the caller's profile. Submitting the same values twice is a
// no-op; the wizard can replay a step safely.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var input service.ProfileInput
	if err := render.Decode(r, &input); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profileService.Save(user.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProfileField) {
			render.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to save profile", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	slog.Info("profile saved", "user_id", user.ID)
	render.JSON(w, http.StatusOK, profile)
}

// Onboarding reports wizard progress: whether every step is complete and
// which step comes next.
func (h *ProfileHandler) Onboarding(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	state, err := h.profileService.Onboarding(user.ID)
	if err != nil {
		slog.Error("failed to load onboarding state", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "failed to load onboarding state")
		return
	}

	render.JSON(w, http.StatusOK, state)
}
