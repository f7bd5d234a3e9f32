// ABOUTME: Feature flag middleware for API endpoints
// ABOUTME: Puts the server's flag manager on every request context for handlers to read

package middleware

import (
	"net/http"

	"swish-api/pkg/featureflags"
)

// FeatureFlagsMiddleware attaches manager to the request context so handlers
// can call featureflags.IsEnabled(ctx, ...)
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := featureflags.WithManager(r.Context(), manager)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
