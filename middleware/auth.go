package middleware

import (
	"context"
	"net/http"

	"todo-api/models"
	"todo-api/store"
	"todo-api/token"
)

// AuthHeader carries the auth token on every authenticated request.
const AuthHeader = "x-auth"

type contextKey struct{}

var userKey contextKey

// WithUser attaches the authenticated user to the request context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom returns the authenticated user placed by RequireAuth.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// RequireAuth resolves the x-auth header to its owning user. A missing,
// malformed, or unmatched token ends the request with 401 and a `{}` body.
func RequireAuth(users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get(AuthHeader)
			if tokenStr == "" {
				unauthorized(w)
				return
			}

			userID, err := token.Parse(tokenStr)
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.FindByToken(r.Context(), userID, tokenStr)
			if err != nil {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// OptionalAuth attaches the user when a valid token is presented and passes
// the request through untouched otherwise.
func OptionalAuth(users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenStr := r.Header.Get(AuthHeader); tokenStr != "" {
				if userID, err := token.Parse(tokenStr); err == nil {
					if user, err := users.FindByToken(r.Context(), userID, tokenStr); err == nil {
						r = r.WithContext(WithUser(r.Context(), user))
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte("{}"))
}
