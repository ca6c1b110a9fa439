package middleware

import (
	"net/http"
	"strings"
	"time"

	"salon-scheduler/pkg/response"
	"salon-scheduler/pkg/session"
)

// AuthMiddleware turns the caller's bearer token into a request session. The
// backend verifies the signature; here the token only needs to carry a valid,
// unexpired identity so it can be forwarded upstream.
type AuthMiddleware struct{}

func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		sess, err := session.FromToken(parts[1], time.Now())
		if err != nil {
			switch err {
			case session.ErrTokenExpired:
				response.Unauthorized(w, "Token has expired")
			default:
				response.Unauthorized(w, "Invalid token")
			}
			return
		}

		ctx := session.WithSession(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
