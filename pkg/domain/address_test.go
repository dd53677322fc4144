package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "syndicate/pkg/domain-errors"
)

// TestParseAddress_Invariants validates the parsing invariant:
// "addresses must be 0x-prefixed 20-byte hex values".
func TestParseAddress_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseAddress("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects missing prefix", func(t *testing.T) {
		_, err := ParseAddress(strings.Repeat("ab", 20))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := ParseAddress("0xabcd")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects non-hex", func(t *testing.T) {
		_, err := ParseAddress("0x" + strings.Repeat("zz", 20))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid address and normalizes case", func(t *testing.T) {
		a, err := ParseAddress("0x" + strings.Repeat("AB", 20))
		require.NoError(t, err)
		assert.Equal(t, "0x"+strings.Repeat("ab", 20), a.String())
	})

	t.Run("round-trips through text marshaling", func(t *testing.T) {
		a := MustAddress("0x" + strings.Repeat("1f", 20))
		text, err := a.MarshalText()
		require.NoError(t, err)

		var back Address
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, a, back)
	})
}

func TestZeroAddress(t *testing.T) {
	assert.True(t, ZeroAddress.IsZero())

	a, err := ParseAddress("0x" + strings.Repeat("00", 20))
	require.NoError(t, err)
	assert.True(t, a.IsZero(), "parsing the zero address succeeds; callers decide whether it is acceptable")

	assert.False(t, MustAddress("0x"+strings.Repeat("01", 20)).IsZero())
}

func TestRoleDerivation(t *testing.T) {
	t.Run("administrator is the zero digest and self-names", func(t *testing.T) {
		assert.Equal(t, RoleID{}, RoleAdministrator)
		assert.Equal(t, "administrator", RoleAdministrator.Name())
	})

	t.Run("derived roles are stable and distinct", func(t *testing.T) {
		assert.Equal(t, RolePauser, DeriveRoleID("pauser"))
		assert.NotEqual(t, RolePauser, RoleInviter)
		assert.NotEqual(t, RoleMinter, RoleProposer)
	})

	t.Run("role ids round-trip through hex", func(t *testing.T) {
		parsed, err := ParseRoleID(RoleInviter.String())
		require.NoError(t, err)
		assert.Equal(t, RoleInviter, parsed)
	})

	t.Run("well-known names resolve", func(t *testing.T) {
		r, ok := RoleByName("inviter")
		require.True(t, ok)
		assert.Equal(t, RoleInviter, r)

		_, ok = RoleByName("nonexistent")
		assert.False(t, ok)
	})
}

func TestParseDigest(t *testing.T) {
	d, err := ParseDigest("0x" + strings.Repeat("5a", 32))
	require.NoError(t, err)
	assert.False(t, d.IsZero())
	assert.Equal(t, "0x"+strings.Repeat("5a", 32), d.String())

	_, err = ParseDigest("5a5a")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
