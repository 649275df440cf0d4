package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"TAREAS_BACK-END/internal/common"
	"TAREAS_BACK-END/internal/utils"
)

// TokenVerifier returns the subject of a valid token. It is satisfied by
// auth.TokenManager.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware validates JWT tokens in the Authorization header and puts
// the user id into the request context
func AuthMiddleware(next http.HandlerFunc, verifier TokenVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") || strings.TrimSpace(tokenParts[1]) == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
			return
		}

		subject, err := verifier.Verify(strings.TrimSpace(tokenParts[1]))
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, common.ErrTokenExpired) {
				msg = "Token expired"
			}
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", msg)
			return
		}

		userID, err := strconv.ParseInt(subject, 10, 64)
		if err != nil || userID <= 0 {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	}
}
