package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fitposture/fitposture/internal/config"
	"github.com/fitposture/fitposture/internal/ctxkeys"
	"github.com/fitposture/fitposture/internal/render"
	"github.com/fitposture/fitposture/internal/service"
	"github.com/fitposture/fitposture/internal/session"
	"github.com/fitposture/fitposture/internal/validation"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type AuthHandler struct {
	authService       *service.AuthService
	userService       *service.UserService
	hub               *session.Hub
	googleOAuthConfig *oauth2.Config
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService, hub *session.Hub, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		hub:         hub,
		googleOAuthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.AppURL + "/auth/google/callback",
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp creates an unconfirmed account. The response never includes a
// session; the user must follow the emailed confirmation link first.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			render.Error(w, http.StatusConflict, "An account with this email already exists.")
			return
		}
		if errors.Is(err, service.ErrInvalidEmail) {
			render.Error(w, http.StatusBadRequest, "Please provide a valid email address.")
			return
		}
		slog.Warn("sign up failed", "error", err, "email", req.Email)
		render.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	render.JSON(w, http.StatusCreated, map[string]any{
		"user":    user,
		"message": "Check your email for the confirmation link.",
	})
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn authenticates and sets the session cookie. An unconfirmed account
// gets the confirmation reminder instead of a generic failure.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailNotConfirmed) {
			render.Error(w, http.StatusForbidden, err.Error())
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			render.Error(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		slog.Error("sign in failed", "error", err, "email", req.Email)
		render.Error(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	if err := h.issueSession(w, user.ID); err != nil {
		render.Error(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	slog.Info("user signed in", "user_id", user.ID, "email", user.Email)
	render.JSON(w, http.StatusOK, map[string]any{
		"user":     user,
		"redirect": "/profile",
	})
}

// SignOut clears the session cookie and notifies the user's other sessions.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)

	if user := ctxkeys.User(r.Context()); user != nil {
		h.hub.Publish(user.ID, session.Event{Type: session.EventSignedOut})
		slog.Info("user signed out", "user_id", user.ID)
	}

	render.JSON(w, http.StatusOK, map[string]string{"redirect": "/signin"})
}

// ConfirmEmail handles the emailed confirmation link, then signs the user in.
func (h *AuthHandler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	user, err := h.authService.ConfirmEmail(token)
	if err != nil {
		slog.Warn("email confirmation failed", "error", err)
		http.Redirect(w, r, "/signin?error=invalid_confirmation_link", http.StatusSeeOther)
		return
	}

	if err := h.issueSession(w, user.ID); err != nil {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}

	slog.Info("email confirmed, user signed in", "user_id", user.ID)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

// RequestPasswordReset always responds with success to prevent enumeration.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateEmail(strings.TrimSpace(req.Email)); err != nil {
		render.Error(w, http.StatusBadRequest, "Please provide a valid email address.")
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		slog.Warn("password reset request failed", "error", err, "email", req.Email)
	}

	render.JSON(w, http.StatusOK, map[string]string{
		"message": "If an account exists for this email, a reset link has been sent.",
	})
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ResetPassword sets the new password from a reset link and signs in.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.ResetPassword(req.Token, req.Password)
	if err != nil {
		render.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.issueSession(w, user.ID); err != nil {
		render.Error(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	slog.Info("password reset, user signed in", "user_id", user.ID)
	render.JSON(w, http.StatusOK, map[string]any{
		"user":     user,
		"redirect": "/profile",
	})
}

// GoogleAuth redirects the user to the Google OAuth consent screen.
func (h *AuthHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	// Generate secure state token for CSRF protection
	state := generateOAuthState()

	cfg := ctxkeys.Config(r.Context())
	isProduction := cfg != nil && cfg.IsProduction()

	// Store state in secure cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProduction, // Secure flag based on APP_ENV (safer than r.TLS behind load balancers)
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600, // 10 minutes
	})

	url := h.googleOAuthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallback handles the OAuth callback from Google.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	// Validate state parameter for CSRF protection
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie("oauth_state")
	if err != nil || cookie.Value != state || state == "" {
		slog.Warn("google oauth state validation failed", "error", err)
		http.Redirect(w, r, "/signin?error=oauth_failed", http.StatusSeeOther)
		return
	}

	// Clear state cookie
	http.SetCookie(w, &http.Cookie{
		Name:   "oauth_state",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Warn("google oauth callback missing code")
		http.Redirect(w, r, "/signin?error=oauth_failed", http.StatusSeeOther)
		return
	}

	// Exchange code for token
	token, err := h.googleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		slog.Error("google oauth token exchange failed", "error", err)
		http.Redirect(w, r, "/signin?error=oauth_failed", http.StatusSeeOther)
		return
	}

	// Get user info from Google
	client := h.googleOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		slog.Error("failed to get google user info", "error", err)
		http.Redirect(w, r, "/signin?error=oauth_failed", http.StatusSeeOther)
		return
	}
	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			slog.Error("failed to close response body", "error", closeErr)
		}
	}()

	var userInfo struct {
		Email string `json:"email"`
	}
	err = json.NewDecoder(resp.Body).Decode(&userInfo)
	if err != nil {
		slog.Error("failed to decode google user info", "error", err)
		http.Redirect(w, r, "/signin?error=oauth_failed", http.StatusSeeOther)
		return
	}

	// Authenticate or create user
	user, err := h.authService.AuthenticateOAuth(userInfo.Email, "google")
	if err != nil {
		slog.Error("oauth authentication failed", "error", err, "email", userInfo.Email)
		http.Redirect(w, r, "/signin?error=oauth_failed", http.StatusSeeOther)
		return
	}

	if err := h.issueSession(w, user.ID); err != nil {
		http.Redirect(w, r, "/signin?error=oauth_failed", http.StatusSeeOther)
		return
	}

	slog.Info("user signed in with google oauth", "user_id", user.ID, "email", user.Email)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// issueSession generates the JWT, sets the cookie and publishes the
// sign-in event to the user's other sessions.
func (h *AuthHandler) issueSession(w http.ResponseWriter, userID string) error {
	user, err := h.userService.ByID(userID)
	if err != nil {
		slog.Error("failed to load user for session", "error", err, "user_id", userID)
		return err
	}

	jwtToken, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate JWT", "error", err, "user_id", userID)
		return err
	}

	h.authService.SetJWTCookie(w, jwtToken, time.Now().Add(h.authService.JWTExpiry()))

	h.hub.Publish(user.ID, session.Event{
		Type: session.EventSignedIn,
		Identity: &session.Identity{
			ID:               user.ID,
			Email:            user.Email,
			EmailConfirmedAt: user.EmailConfirmedAt,
		},
	})

	return nil
}

// generateOAuthState creates cryptographically secure random state token for OAuth CSRF protection
func generateOAuthState() string {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		panic("failed to generate oauth state: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(bytes)
}
