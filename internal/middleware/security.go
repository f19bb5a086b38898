package middleware

import (
	"net/http"

	"github.com/fitposture/fitposture/internal/ctxkeys"
)

// SecurityHeaders sets standard security headers on every response.
// HSTS is only sent in production where TLS is guaranteed.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'self'; img-src 'self' https: data:; frame-ancestors 'none'")

		cfg := ctxkeys.Config(r.Context())
		if cfg != nil && cfg.IsProduction() {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
