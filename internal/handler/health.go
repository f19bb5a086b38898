package handler

import (
	"net/http"

	"github.com/fitposture/fitposture/internal/render"
	"github.com/jmoiron/sqlx"
)

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(); err != nil {
		render.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
