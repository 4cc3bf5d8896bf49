package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/giftlink/giftlink-backend/internal/token"
	"github.com/giftlink/giftlink-backend/internal/utils"
)

type contextKey string

const userIDKey contextKey = "user_id"

// AuthMiddleware validates the bearer token in the Authorization header and
// injects the verified user id into the request context. Identity is taken
// from the token claim only, never from request headers.
func AuthMiddleware(next http.HandlerFunc, issuer *token.Issuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
			return
		}

		userID, err := issuer.Verify(tokenParts[1])
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// UserIDFromContext returns the authenticated user id set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
