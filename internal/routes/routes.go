package routes

import (
	"net/http"

	"github.com/fitposture/fitposture/internal/app"
	"github.com/fitposture/fitposture/internal/handler"
	"github.com/fitposture/fitposture/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.UserService, app.SessionHub, app.Cfg)
	sess := handler.NewSessionHandler(app.SessionHub)
	account := handler.NewAccountHandler(app.UserService, app.AuthService)
	profile := handler.NewProfileHandler(app.ProfileService)
	assessment := handler.NewAssessmentHandler(app.AssessmentService)
	exerciseLog := handler.NewExerciseLogHandler(app.ExerciseLogService)
	photo := handler.NewPhotoHandler(app.PhotoService)
	billing := handler.NewBillingHandler(app.PaymentService, app.SubscriptionService)
	content := handler.NewContentHandler(app.ContentService)
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/health", health.Check)

	// Content
	mux.HandleFunc("GET /api/blog", content.Posts)
	mux.HandleFunc("GET /api/blog/{slug}", content.Post)
	mux.HandleFunc("GET /api/courses", content.Courses)
	mux.HandleFunc("GET /api/courses/{slug}", content.Course)
	mux.HandleFunc("GET /api/exercises", content.Exercises)
	mux.HandleFunc("GET /api/plans", billing.Plans)

	// Auth - Authentication flow (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /api/auth/signup", rateLimiter(middleware.RequireGuest(auth.SignUp)))
	mux.HandleFunc("POST /api/auth/signin", rateLimiter(middleware.RequireGuest(auth.SignIn)))
	mux.HandleFunc("POST /api/auth/signout", auth.SignOut)
	mux.HandleFunc("POST /api/auth/password-reset", rateLimiter(middleware.RequireGuest(auth.RequestPasswordReset)))
	mux.HandleFunc("POST /api/auth/password-reset/confirm", rateLimiter(auth.ResetPassword))

	// Token verification links from email
	mux.HandleFunc("GET /auth/confirm/{token}", auth.ConfirmEmail)

	// OAuth
	mux.HandleFunc("GET /auth/google", rateLimiter(middleware.RequireGuest(auth.GoogleAuth)))
	mux.HandleFunc("GET /auth/google/callback", rateLimiter(auth.GoogleCallback))

	// Session state
	mux.HandleFunc("GET /api/session", sess.Current)
	mux.HandleFunc("GET /api/session/events", middleware.RequireAuth(sess.Events))

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	// Profile and onboarding
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profile.Show))
	mux.HandleFunc("PUT /api/profile", middleware.RequireAuth(profile.Save))
	mux.HandleFunc("GET /api/profile/onboarding", middleware.RequireAuth(profile.Onboarding))

	// Posture assessment and recommendations
	mux.HandleFunc("GET /api/assessment", middleware.RequireAuth(assessment.Show))
	mux.HandleFunc("PUT /api/assessment", middleware.RequireAuth(assessment.Save))
	mux.HandleFunc("GET /api/recommendations", middleware.RequireAuth(assessment.Recommendations))

	// Exercise logs
	mux.HandleFunc("POST /api/exercise-logs", middleware.RequireAuth(exerciseLog.Create))
	mux.HandleFunc("GET /api/exercise-logs", middleware.RequireAuth(exerciseLog.List))
	mux.HandleFunc("DELETE /api/exercise-logs/{id}", middleware.RequireAuth(exerciseLog.Delete))

	// Progress photos
	mux.HandleFunc("POST /api/progress-photos", middleware.RequireAuth(photo.Upload))
	mux.HandleFunc("GET /api/progress-photos", middleware.RequireAuth(photo.List))
	mux.HandleFunc("DELETE /api/progress-photos/{id}", middleware.RequireAuth(photo.Delete))

	// Account (Security & Identity)
	mux.HandleFunc("POST /api/account/password", middleware.RequireAuth(account.UpdatePassword))
	mux.HandleFunc("DELETE /api/account", middleware.RequireAuth(account.DeleteAccount))

	// Billing
	mux.HandleFunc("GET /api/subscription", middleware.RequireAuth(billing.Subscription))
	mux.HandleFunc("POST /api/billing/checkout", middleware.RequireAuth(billing.CreateCheckout))
	mux.HandleFunc("GET /api/billing/portal", middleware.RequireAuth(billing.CustomerPortal))

	// ============================================================================
	// WEBHOOKS
	// ============================================================================

	// Payment provider webhook (works with both Polar and Stripe)
	mux.HandleFunc("POST /webhooks/payment", billing.Webhook)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService, app.UserService, app.ProfileService, app.SubscriptionService),
		middleware.WithURLPath,
	)

	return handler
}
