package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)

	raw, err := iss.Issue("firebase-uid-1")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := iss.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-1", claims.User.UID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, 5*time.Second)
}

func TestParseExpiredToken(t *testing.T) {
	iss := NewIssuer("test-secret", -time.Minute)

	raw, err := iss.Issue("firebase-uid-1")
	require.NoError(t, err)

	_, err = iss.Parse(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	raw, err := NewIssuer("secret-a", time.Hour).Issue("firebase-uid-1")
	require.NoError(t, err)

	_, err = NewIssuer("secret-b", time.Hour).Parse(raw)
	require.Error(t, err)
	assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseGarbage(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)

	_, err := iss.Parse("not-a-token")
	require.Error(t, err)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{
		User: SessionUser{UID: "firebase-uid-1"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer("test-secret", time.Hour).Parse(raw)
	require.Error(t, err)
}
