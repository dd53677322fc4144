package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicate/pkg/domain"
)

func TestVerifier_RoundTrip(t *testing.T) {
	v := NewVerifier("test-signing-key")
	addr := domain.MustAddress("0x" + strings.Repeat("11", 20))

	token, err := v.IssueToken(addr, time.Minute)
	require.NoError(t, err)

	got, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}

func TestVerifier_Rejects(t *testing.T) {
	v := NewVerifier("test-signing-key")
	addr := domain.MustAddress("0x" + strings.Repeat("11", 20))

	t.Run("expired token", func(t *testing.T) {
		token, err := v.IssueToken(addr, -time.Minute)
		require.NoError(t, err)
		_, err = v.ValidateToken(token)
		require.Error(t, err)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := NewVerifier("other-key")
		token, err := other.IssueToken(addr, time.Minute)
		require.NoError(t, err)
		_, err = v.ValidateToken(token)
		require.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := v.ValidateToken("not.a.jwt")
		require.Error(t, err)
	})

	t.Run("zero address subject", func(t *testing.T) {
		token, err := v.IssueToken(domain.ZeroAddress, time.Minute)
		require.NoError(t, err)
		_, err = v.ValidateToken(token)
		require.Error(t, err)
	})
}
