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

type ExerciseLogHandler struct {
	exerciseLogService *service.ExerciseLogService
}

func NewExerciseLogHandler(exerciseLogService *service.ExerciseLogService) *ExerciseLogHandler {
	return &ExerciseLogHandler{exerciseLogService: exerciseLogService}
}

// Create records a completed exercise for the caller.
func (h *ExerciseLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var input service.ExerciseLogInput
	if err := render.Decode(r, &input); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.exerciseLogService.Create(user.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrExerciseTitleRequired) {
			render.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create exercise log", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "failed to create exercise log")
		return
	}

	slog.Info("exercise log created", "user_id", user.ID, "log_id", log.ID)
	render.JSON(w, http.StatusCreated, log)
}

// List returns the caller's exercise history, newest first.
func (h *ExerciseLogHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	logs, err := h.exerciseLogService.ByUserID(user.ID)
	if err != nil {
		slog.Error("failed to list exercise logs", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "failed to list exercise logs")
		return
	}

	render.JSON(w, http.StatusOK, logs)
}

// Delete removes one of the caller's log entries. Another user's entry
// reads as not found.
func (h *ExerciseLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	id := r.PathValue("id")

	if err := h.exerciseLogService.Delete(id, user.ID); err != nil {
		if errors.Is(err, repository.ErrExerciseLogNotFound) {
			render.Error(w, http.StatusNotFound, "exercise log not found")
			return
		}
		slog.Error("failed to delete exercise log", "error", err, "user_id", user.ID, "log_id", id)
		render.Error(w, http.StatusInternalServerError, "failed to delete exercise log")
		return
	}

	slog.Info("exercise log deleted", "user_id", user.ID, "log_id", id)
	render.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
