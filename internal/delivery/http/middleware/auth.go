package middleware

import (
	"context"
	"net/http"

	"eventboard/internal/domain"
)

type contextKey string

const sessionKey contextKey = "session"

// LoginPath is where the guards send denied requests. A guard redirect is
// indistinguishable for "not logged in" and "not admin": both land here.
const LoginPath = "/login"

// SetSession returns a context carrying the session. Used by the guards.
func SetSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext returns the session placed by a guard, if present.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*domain.Session)
	return s, ok && s != nil
}

// RequireAuth returns a wrapper that loads the current session and puts it
// in the request context. Without a session the request is redirected to the
// login route; the check is synchronous and fails closed.
func RequireAuth(sessions domain.SessionManager) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess := sessions.Get(r.Context())
			if sess == nil || sess.Username == "" {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			next(w, r.WithContext(SetSession(r.Context(), sess)))
		}
	}
}

// RequireAdmin is RequireAuth plus an admin role check. A logged-in
// non-admin is redirected to the login route exactly like an anonymous
// caller; there is no separate forbidden outcome.
func RequireAdmin(sessions domain.SessionManager) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess := sessions.Get(r.Context())
			if !sess.IsAdmin() {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			next(w, r.WithContext(SetSession(r.Context(), sess)))
		}
	}
}
