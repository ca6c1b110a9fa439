package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed bearer token")
	ErrTokenExpired   = errors.New("token has expired")
)

type contextKey string

const sessionKey contextKey = "session"

// Session is the injected auth context for one request. The engine never
// verifies the token signature; the salon backend is the verifier. The raw
// token is carried so upstream calls can forward it.
type Session struct {
	Token  string
	UserID string
	Email  string
}

type claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// FromToken builds a session from a bearer token. Claims are parsed without
// signature verification, but an expired token is rejected early rather than
// forwarded upstream.
func FromToken(tokenString string, now time.Time) (*Session, error) {
	parsed := &claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, parsed); err != nil {
		return nil, ErrMalformedToken
	}
	if parsed.ExpiresAt != nil && parsed.ExpiresAt.Before(now) {
		return nil, ErrTokenExpired
	}

	userID := parsed.UserID
	if userID == "" {
		userID = parsed.Subject
	}

	return &Session{
		Token:  tokenString,
		UserID: userID,
		Email:  parsed.Email,
	}, nil
}

// WithSession attaches a session to the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext extracts the session attached by the auth middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok
}
