package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
	"github.com/heartmarshall/learnenglish-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden for authenticated callers without the admin role.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly guards a handler with RequireAdmin. Must run after Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch err := RequireAdmin(r.Context()); err {
		case nil:
			next.ServeHTTP(w, r)
		case domain.ErrUnauthorized:
			writeError(w, http.StatusUnauthorized, domain.ErrorTypeUnauthorized, "authentication required")
		default:
			writeError(w, http.StatusForbidden, domain.ErrorTypeForbidden, "admin access required")
		}
	})
}

// Disabled answers every request with 503. Used for the administrative
// routes when no signing secret is configured.
func Disabled(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusServiceUnavailable, domain.ErrorTypeUnavailable, "administrative endpoints are disabled")
	})
}
