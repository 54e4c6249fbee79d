package utils

import (
	"academy/backend/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret", SessionTTL: time.Hour}

	token, expires, err := GenerateSessionToken(42, cfg)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	id, err := ParseSessionToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestSessionTokenRejectsOtherSecretAndExpiry(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret", SessionTTL: time.Hour}
	token, _, err := GenerateSessionToken(1, cfg)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, &config.Config{JWTSecret: "other"})
	assert.Error(t, err)

	expired := &config.Config{JWTSecret: "secret", SessionTTL: -time.Minute}
	token, _, err = GenerateSessionToken(1, expired)
	require.NoError(t, err)
	_, err = ParseSessionToken(token, expired)
	assert.Error(t, err)
}
