package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName      string
	AppEnv       string
	AppURL       string
	Port         string
	SupportEmail string
	ContentPath  string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret                string
	JWTExpiry                time.Duration
	TokenEmailConfirmExpiry  time.Duration
	TokenPasswordResetExpiry time.Duration

	// OAuth
	GoogleClientID     string
	GoogleClientSecret string

	// Email
	EmailFrom    string
	ResendAPIKey string

	// Payment
	PaymentProvider string // "stripe" or "polar"
	// Payment - Stripe
	StripeSecretKey              string
	StripeWebhookSecret          string
	StripePriceIDPremiumMonthly  string
	StripePriceIDProMonthly      string
	// Payment - Polar
	PolarAPIKey                  string
	PolarWebhookSecret           string
	PolarSandboxMode             bool
	PolarProductIDPremiumMonthly string
	PolarProductIDProMonthly     string

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region              string
	S3Bucket              string
	S3AccessKey           string
	S3SecretKey           string
	S3Endpoint            string // Optional: for S3-compatible services
	S3PresignExpiryPublic time.Duration

	// Uploads
	MaxPhotoSizeBytes int64
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:      envString("APP_NAME", "FitPosture"),
		AppEnv:       envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:       envRequired("APP_URL"), // Required: base URL for email confirmation links and OAuth redirects
		Port:         envString("PORT", "8090"),
		SupportEmail: envString("SUPPORT_EMAIL", "hello@fitposture.app"),
		ContentPath:  envString("CONTENT_PATH", "content"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/fitposture.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Security
		JWTSecret:                envRequired("JWT_SECRET"),
		JWTExpiry:                envDuration("JWT_EXPIRY", 168*time.Hour),                // 7 days
		TokenEmailConfirmExpiry:  envDuration("TOKEN_EMAIL_CONFIRM_EXPIRY", 24*time.Hour), // 24 hours
		TokenPasswordResetExpiry: envDuration("TOKEN_PASSWORD_RESET_EXPIRY", 1*time.Hour), // 1 hour

		// OAuth
		GoogleClientID:     envString("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: envString("GOOGLE_CLIENT_SECRET", ""),

		// Email (RESEND_API_KEY optional in development, required in production)
		EmailFrom:    envString("EMAIL_FROM", "noreply@fitposture.app"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),

		// Payment
		PaymentProvider:              envString("PAYMENT_PROVIDER", "stripe"),
		StripeSecretKey:              envString("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret:          envString("STRIPE_WEBHOOK_SECRET", ""),
		StripePriceIDPremiumMonthly:  envString("STRIPE_PRICE_ID_PREMIUM_MONTHLY", ""),
		StripePriceIDProMonthly:      envString("STRIPE_PRICE_ID_PRO_MONTHLY", ""),
		PolarAPIKey:                  envString("POLAR_API_KEY", ""),
		PolarWebhookSecret:           envString("POLAR_WEBHOOK_SECRET", ""),
		PolarSandboxMode:             envBool("POLAR_SANDBOX_MODE", envString("APP_ENV", "development") == "development"),
		PolarProductIDPremiumMonthly: envString("POLAR_PRODUCT_ID_PREMIUM_MONTHLY", ""),
		PolarProductIDProMonthly:     envString("POLAR_PRODUCT_ID_PRO_MONTHLY", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage (S3-compatible - required for progress photo uploads)
		S3Region:              envRequired("S3_REGION"),
		S3Bucket:              envRequired("S3_BUCKET"),
		S3AccessKey:           envRequired("S3_ACCESS_KEY"),
		S3SecretKey:           envRequired("S3_SECRET_KEY"),
		S3Endpoint:            envString("S3_ENDPOINT", ""),
		S3PresignExpiryPublic: envDuration("S3_PRESIGN_EXPIRY_PUBLIC", 168*time.Hour),

		// Uploads
		MaxPhotoSizeBytes: envInt64("MAX_PHOTO_SIZE_BYTES", 10<<20), // 10 MB
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for production deployments.
// Development allows some services (like email) to use fallback modes for easier local testing.
func validateProduction(cfg *Config) {
	if cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and sensitive data are excluded.
// Safe to put in request contexts and client-facing responses.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:      c.AppName,
		AppEnv:       c.AppEnv,
		AppURL:       c.AppURL,
		Port:         c.Port,
		SupportEmail: c.SupportEmail,

		EmailFrom: c.EmailFrom,

		GoogleClientID: c.GoogleClientID,

		S3Endpoint: c.S3Endpoint,
	}
}
