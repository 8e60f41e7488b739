package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken("sess-1", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
}

func TestParseToken_Rejects(t *testing.T) {
	tok, err := GenerateToken("sess-1", "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(tok, "other")
	assert.Error(t, err)

	expired, err := GenerateToken("sess-1", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	assert.Error(t, err)

	_, err = ParseToken("garbage", "secret")
	assert.Error(t, err)
}
