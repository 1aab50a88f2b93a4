package http

import (
	"context"
	"net/http"
)

type contextKey string

const scopeKey contextKey = "session_scope"

const sessionCookie = "sid"

// SessionMiddleware resolves the request's session Scope from the sid
// cookie, creating a fresh session (and cookie) when none exists or the old
// one was evicted.
func SessionMiddleware(manager *Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var scope *Scope

			if cookie, err := r.Cookie(sessionCookie); err == nil {
				scope, _ = manager.Acquire(cookie.Value)
			}

			if scope == nil {
				sid, fresh := manager.Create()
				scope = fresh
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), scopeKey, scope)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// scopeFromContext returns the request's session Scope. It is nil only when
// SessionMiddleware is not mounted, which is a wiring bug.
func scopeFromContext(ctx context.Context) *Scope {
	scope, _ := ctx.Value(scopeKey).(*Scope)
	return scope
}

// RequireAuth guards a subtree behind an authenticated session.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := scopeFromContext(r.Context())
		if scope == nil || !scope.Session.IsAuthenticated() {
			respondError(w, http.StatusUnauthorized, "unauthorized", "login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
