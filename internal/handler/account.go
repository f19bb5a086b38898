package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fitposture/fitposture/internal/ctxkeys"
	"github.com/fitposture/fitposture/internal/render"
	"github.com/fitposture/fitposture/internal/service"
)

type AccountHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewAccountHandler(userService *service.UserService, authService *service.AuthService) *AccountHandler {
	return &AccountHandler{
		userService: userService,
		authService: authService,
	}
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UpdatePassword changes the caller's password after verifying the current one.
func (h *AccountHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updatePasswordRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.userService.UpdatePassword(user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidCurrentPassword) {
			render.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		render.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("password updated", "user_id", user.ID)
	render.JSON(w, http.StatusOK, map[string]string{"message": "Password updated."})
}

// DeleteAccount removes the caller's account and everything attached to it.
// Paid subscriptions must be cancelled with the provider first.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	if err := h.userService.DeleteAccount(user.ID); err != nil {
		if errors.Is(err, service.ErrActiveSubscription) {
			render.Error(w, http.StatusConflict, "Please cancel your subscription before deleting your account.")
			return
		}
		slog.Error("failed to delete account", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "failed to delete account")
		return
	}

	h.authService.ClearJWTCookie(w)
	slog.Info("account deleted", "user_id", user.ID)
	render.JSON(w, http.StatusOK, map[string]string{"redirect": "/"})
}
