package api

import (
	"context"
	"net/http"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// RequireAuth validates the session cookie and injects the authenticated
// user's ID into the request context.
func (api *Api) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			fail(w, http.StatusUnauthorized, "Unauthorized - no token provided")
			return
		}

		claims, err := api.Tokens.Validate(cookie.Value)
		if err != nil {
			fail(w, http.StatusUnauthorized, "Unauthorized - invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext retrieves the authenticated user ID set by RequireAuth.
func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDContextKey).(string)
	return id, ok
}
