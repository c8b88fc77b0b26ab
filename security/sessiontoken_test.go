package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := CreateSessionToken(Identity{UserID: "admin", RealName: "관리자"}, secret, 10*time.Minute)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.UserID)
	assert.Equal(t, "관리자", claims.RealName)
	assert.Equal(t, "admin", claims.Subject)
	assert.True(t, claims.IsAdmin())
}

func TestSessionTokenRejected(t *testing.T) {
	expired, err := CreateSessionToken(Identity{UserID: "E100"}, secret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseSessionToken(expired, secret)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))

	valid, err := CreateSessionToken(Identity{UserID: "E100"}, secret, time.Minute)
	require.NoError(t, err)
	_, err = ParseSessionToken(valid, []byte("other"))
	assert.Error(t, err)

	_, err = ParseSessionToken("not-a-token", secret)
	assert.Error(t, err)

	_, err = CreateSessionToken(Identity{UserID: "E100"}, nil, time.Minute)
	assert.Error(t, err)
}
