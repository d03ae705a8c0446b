// Package auth resolves request identity from opaque session tokens.
// Token issuance happens in an external system; this package only reads
// the sessions it writes.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Tekmindlabs/Aivy-Dojo/internal/store"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "aivy_session"

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the authenticated user ID from the request
// context. Empty means no authenticated identity.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// WithUserID returns a context carrying the given user ID. Exposed for
// handler tests.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Middleware resolves the session token on each request and, when valid,
// attaches the user ID to the request context. Requests without a valid
// session pass through unauthenticated; rejecting them is the handler's
// decision.
func Middleware(sessions store.SessionRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := sessions.UserIDForToken(r.Context(), token)
			if err != nil {
				slog.Warn("session lookup failed", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// tokenFromRequest checks the Authorization header first, then the
// session cookie.
func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if rest, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(rest)
		}
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
