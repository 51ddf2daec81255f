package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vaughan-dsouza/BeGoForms/internal/utils"
)

// AuthMiddleware requires a bearer token signed with secret. With an empty
// secret the API is left open and requests pass through untouched.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				utils.JSONError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			parts := strings.SplitN(auth, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				utils.JSONError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			token := strings.TrimSpace(parts[1])
			if token == "" {
				utils.JSONError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := utils.VerifyToken(token, secret)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			// push client name into context
			ctx := context.WithValue(r.Context(), utils.CtxClientKey, claims.Client())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
