package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("irrelevant-key"))
	require.NoError(t, err)
	return signed
}

func TestFromToken(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	raw := signToken(t, jwt.MapClaims{
		"user_id": "user-1",
		"email":   "admin@example.com",
		"exp":     now.Add(time.Hour).Unix(),
	})

	sess, err := FromToken(raw, now)
	require.NoError(t, err)
	assert.Equal(t, raw, sess.Token)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, "admin@example.com", sess.Email)
}

func TestFromTokenFallsBackToSubject(t *testing.T) {
	now := time.Now()
	raw := signToken(t, jwt.MapClaims{
		"sub": "subject-1",
		"exp": now.Add(time.Hour).Unix(),
	})

	sess, err := FromToken(raw, now)
	require.NoError(t, err)
	assert.Equal(t, "subject-1", sess.UserID)
}

func TestFromTokenRejectsExpired(t *testing.T) {
	now := time.Now()
	raw := signToken(t, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     now.Add(-time.Minute).Unix(),
	})

	_, err := FromToken(raw, now)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestFromTokenRejectsMalformed(t *testing.T) {
	_, err := FromToken("not.a.token", time.Now())
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestContextRoundTrip(t *testing.T) {
	sess := &Session{Token: "raw", UserID: "user-1"}
	ctx := WithSession(context.Background(), sess)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, sess, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
