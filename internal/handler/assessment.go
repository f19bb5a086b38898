package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fitposture/fitposture/internal/catalog"
	"github.com/fitposture/fitposture/internal/ctxkeys"
	"github.com/fitposture/fitposture/internal/render"
	"github.com/fitposture/fitposture/internal/repository"
	"github.com/fitposture/fitposture/internal/service"
)

type AssessmentHandler struct {
	assessmentService *service.AssessmentService
}

func NewAssessmentHandler(assessmentService *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// Show returns the caller's posture assessment, or 404 before the first save.
func (h *AssessmentHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	assessment, err := h.assessmentService.ByUserID(user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAssessmentNotFound) {
			render.Error(w, http.StatusNotFound, "no posture assessment recorded yet")
			return
		}
		slog.Error("failed to load assessment", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "failed to load assessment")
		return
	}

	render.JSON(w, http.StatusOK, assessment)
}

// Save upserts the caller's single posture assessment row.
func (h *AssessmentHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var input service.AssessmentInput
	if err := render.Decode(r, &input); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.assessmentService.Save(user.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCondition) {
			render.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to save assessment", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "failed to save assessment")
		return
	}

	slog.Info("posture assessment saved", "user_id", user.ID)
	render.JSON(w, http.StatusOK, assessment)
}

// Recommendations returns the exercises matching the caller's assessment.
// With no assessment or no flagged conditions, the body carries the
// well-aligned message and an empty list.
func (h *AssessmentHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	exercises, err := h.assessmentService.Recommendations(user.ID)
	if err != nil {
		slog.Error("failed to build recommendations", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "failed to build recommendations")
		return
	}

	if len(exercises) == 0 {
		render.JSON(w, http.StatusOK, map[string]any{
			"exercises": []catalog.Exercise{},
			"message":   catalog.WellAlignedMessage,
		})
		return
	}

	render.JSON(w, http.StatusOK, map[string]any{"exercises": exercises})
}
