package handler

import (
	"log/slog"
	"net/http"

	"github.com/fitposture/fitposture/internal/catalog"
	"github.com/fitposture/fitposture/internal/render"
	"github.com/fitposture/fitposture/internal/service"
)

type ContentHandler struct {
	contentService *service.ContentService
}

func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Posts lists blog posts, optionally filtered by ?tag=.
func (h *ContentHandler) Posts(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")

	var (
		posts any
		err   error
	)
	if tag != "" {
		posts, err = h.contentService.PostsByTag(tag)
	} else {
		posts, err = h.contentService.Posts()
	}
	if err != nil {
		slog.Error("failed to list blog posts", "error", err)
		render.Error(w, http.StatusInternalServerError, "failed to list posts")
		return
	}

	render.JSON(w, http.StatusOK, posts)
}

// Post returns a single blog post by slug.
func (h *ContentHandler) Post(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	post, err := h.contentService.Post(slug)
	if err != nil {
		render.Error(w, http.StatusNotFound, "post not found")
		return
	}

	render.JSON(w, http.StatusOK, post)
}

// Courses lists the course pages.
func (h *ContentHandler) Courses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.contentService.Courses()
	if err != nil {
		slog.Error("failed to list courses", "error", err)
		render.Error(w, http.StatusInternalServerError, "failed to list courses")
		return
	}

	render.JSON(w, http.StatusOK, courses)
}

// Course returns a single course by slug.
func (h *ContentHandler) Course(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	course, err := h.contentService.Course(slug)
	if err != nil {
		render.Error(w, http.StatusNotFound, "course not found")
		return
	}

	render.JSON(w, http.StatusOK, course)
}

// Exercises returns the static exercise catalog, optionally narrowed to a
// region and condition.
func (h *ContentHandler) Exercises(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	condition := r.URL.Query().Get("condition")

	if region == "" && condition == "" {
		render.JSON(w, http.StatusOK, catalog.All())
		return
	}
	if region == "" {
		render.Error(w, http.StatusBadRequest, "region is required when filtering by condition")
		return
	}

	render.JSON(w, http.StatusOK, catalog.Exercises(region, condition))
}
