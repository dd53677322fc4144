package eligibility

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/requestcontext"
)

func newTestVerifier(t *testing.T) (*Verifier, domain.Address) {
	t.Helper()
	reg := roles.NewRegistry("ledger", roles.NewInMemory())
	inviter := addr("1a")
	require.NoError(t, reg.Seed(context.Background(), map[domain.RoleID][]domain.Address{
		domain.RoleInviter: {inviter},
	}))
	return NewVerifier(NewInMemory(), reg, nil, nil), inviter
}

func TestVerifier_SetCommitmentRequiresInviter(t *testing.T) {
	v, inviter := newTestVerifier(t)
	list := members(4)
	root, _ := buildTree(t, list)

	t.Run("stranger rejected", func(t *testing.T) {
		ctx := requestcontext.WithActor(context.Background(), addr("2b"))
		err := v.SetCommitment(ctx, root)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("zero root rejected", func(t *testing.T) {
		ctx := requestcontext.WithActor(context.Background(), inviter)
		err := v.SetCommitment(ctx, domain.Digest{})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("inviter rotates", func(t *testing.T) {
		ctx := requestcontext.WithActor(context.Background(), inviter)
		require.NoError(t, v.SetCommitment(ctx, root))

		current, err := v.Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, root, current)
	})
}

func TestVerifier_RotationInvalidatesPriorProofs(t *testing.T) {
	v, inviter := newTestVerifier(t)
	ctx := requestcontext.WithActor(context.Background(), inviter)

	oldList := members(4)
	oldRoot, oldProofs := buildTree(t, oldList)
	require.NoError(t, v.SetCommitment(ctx, oldRoot))

	ok, err := v.Verify(context.Background(), oldProofs[oldList[0]], oldList[0])
	require.NoError(t, err)
	assert.True(t, ok)

	// Rotate to a tree that excludes the first member.
	newRoot, newProofs := buildTree(t, oldList[1:])
	require.NoError(t, v.SetCommitment(ctx, newRoot))

	ok, err = v.Verify(context.Background(), oldProofs[oldList[0]], oldList[0])
	require.NoError(t, err)
	assert.False(t, ok, "proof against the replaced root must fail")

	ok, err = v.Verify(context.Background(), newProofs[oldList[1]], oldList[1])
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifier_NoCommitmentMeansNoClaims(t *testing.T) {
	v, _ := newTestVerifier(t)

	ok, err := v.Verify(context.Background(), nil, addr("3c"))
	require.NoError(t, err)
	assert.False(t, ok)
}
