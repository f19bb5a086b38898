package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fitposture/fitposture/internal/ctxkeys"
	"github.com/fitposture/fitposture/internal/render"
	"github.com/fitposture/fitposture/internal/repository"
	"github.com/fitposture/fitposture/internal/service"
)

// AuthMiddleware checks for a JWT and adds user + profile + subscription to
// the context if valid. Requests without a valid token continue anonymous.
func AuthMiddleware(authService *service.AuthService, userService *service.UserService, profileService *service.ProfileService, subscriptionService *service.SubscriptionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				// No token, continue without auth
				next.ServeHTTP(w, r)
				return
			}

			// Verify token
			claims, err := authService.VerifyJWT(token)
			if err != nil {
				// Invalid token, clear cookie and continue
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			// Get user ID from claims
			userID, ok := claims["user_id"].(string)
			if !ok {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			// Fetch user from database
			user, err := userService.ByID(userID)
			if err != nil {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			// Security: Remove password hash from context
			user.PasswordHash = nil

			ctx := ctxkeys.WithUser(r.Context(), user)

			// Profile is bootstrapped on first sign-in; tolerate a missing
			// row so the onboarding wizard can still load.
			profile, err := profileService.ByUserID(userID)
			if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}
			if profile != nil {
				ctx = ctxkeys.WithProfile(ctx, profile)
			}

			subscription, err := subscriptionService.Subscription(userID)
			if err != nil {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}
			ctx = ctxkeys.WithSubscription(ctx, subscription)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenFromRequest reads the JWT from the auth cookie or, for API clients,
// from a bearer Authorization header.
func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("auth_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}

// wantsJSON reports whether the client expects a JSON response instead of a
// browser redirect.
func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// RequireAuth ensures the user is authenticated. Anonymous API requests get
// a 401 with a redirect hint; browser requests are redirected to sign-in.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			if wantsJSON(r) {
				render.JSON(w, http.StatusUnauthorized, map[string]string{
					"error":    "authentication required",
					"redirect": "/signin",
				})
				return
			}
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// RequireGuest ensures the user is not authenticated. Signed-in users are
// sent to their profile.
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user != nil {
			if wantsJSON(r) {
				render.JSON(w, http.StatusOK, map[string]string{
					"redirect": "/profile",
				})
				return
			}
			http.Redirect(w, r, "/profile", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}
