package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salon-scheduler/pkg/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("any-key"))
	require.NoError(t, err)
	return signed
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *session.Session) {
	t.Helper()

	var captured *session.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = session.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/grid", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	NewAuthMiddleware().Authenticate(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestAuthenticateAttachesSession(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))

	rec, sess := runAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sess)
	assert.Equal(t, token, sess.Token)
	assert.Equal(t, "user-1", sess.UserID)
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	rec, sess := runAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sess)
}

func TestAuthenticateRejectsBadFormat(t *testing.T) {
	rec, _ := runAuth(t, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	token := signedToken(t, time.Now().Add(-time.Hour))

	rec, sess := runAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sess)
}
