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

type PhotoHandler struct {
	photoService *service.PhotoService
}

func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// Upload accepts a multipart progress photo. The subscription's photo limit
// is enforced before anything touches storage.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	sub := ctxkeys.Subscription(r.Context())
	cfg := ctxkeys.Config(r.Context())

	maxSize := int64(10 << 20)
	if cfg != nil {
		maxSize = cfg.MaxPhotoSizeBytes
	}

	if err := r.ParseMultipartForm(maxSize); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid multipart form or file too large")
		return
	}

	_, header, err := r.FormFile("photo")
	if err != nil {
		render.Error(w, http.StatusBadRequest, "photo file is required")
		return
	}

	input := service.PhotoInput{
		PhotoType: r.FormValue("photo_type"),
		TakenAt:   r.FormValue("taken_at"),
		Notes:     r.FormValue("notes"),
	}

	photo, err := h.photoService.Upload(user.ID, sub, header, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPhotoLimitReached):
			render.Error(w, http.StatusForbidden, "Photo limit reached for your plan. Upgrade to upload more photos.")
		case errors.Is(err, service.ErrInvalidPhotoType), errors.Is(err, service.ErrInvalidPhotoFile):
			render.Error(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to upload photo", "error", err, "user_id", user.ID)
			render.Error(w, http.StatusInternalServerError, "failed to upload photo")
		}
		return
	}

	slog.Info("progress photo uploaded", "user_id", user.ID, "photo_id", photo.ID, "type", photo.PhotoType)
	render.JSON(w, http.StatusCreated, photo)
}

// List returns the caller's photos, optionally filtered by ?type=.
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	photoType := r.URL.Query().Get("type")

	photos, err := h.photoService.ByUserID(user.ID, photoType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPhotoType) {
			render.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to list photos", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "failed to list photos")
		return
	}

	render.JSON(w, http.StatusOK, photos)
}

// Delete removes one of the caller's photos and its stored object.
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	id := r.PathValue("id")

	if err := h.photoService.Delete(id, user.ID); err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			render.Error(w, http.StatusNotFound, "photo not found")
			return
		}
		slog.Error("failed to delete photo", "error", err, "user_id", user.ID, "photo_id", id)
		render.Error(w, http.StatusInternalServerError, "failed to delete photo")
		return
	}

	slog.Info("progress photo deleted", "user_id", user.ID, "photo_id", id)
	render.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
