package ledger

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

// blockingGuard simulates the paused transfer guard.
type blockingGuard struct{ blocked bool }

func (g *blockingGuard) CheckTransfer(context.Context, domain.Address, domain.Address, domain.IdentityID) error {
	if g.blocked {
		return dErrors.New(dErrors.CodeTransferBlocked, "identity transfers are paused")
	}
	return nil
}

func newTestService(t *testing.T) (*Service, *blockingGuard, domain.Address) {
	t.Helper()
	reg := roles.NewRegistry("ledger", roles.NewInMemory())
	burner := addr("b0")
	require.NoError(t, reg.Seed(context.Background(), map[domain.RoleID][]domain.Address{
		domain.RoleBurner: {burner},
	}))
	guard := &blockingGuard{}
	return NewService(NewInMemory(), reg, guard, nil, nil), guard, burner
}

func asActor(a domain.Address) context.Context {
	return requestcontext.WithActor(context.Background(), a)
}

func TestService_MintRejectsZeroAddress(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Mint(context.Background(), domain.ZeroAddress)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestService_Burn(t *testing.T) {
	svc, _, burner := newTestService(t)
	holder := addr("01")

	identity, err := svc.Mint(context.Background(), holder)
	require.NoError(t, err)

	t.Run("stranger cannot burn", func(t *testing.T) {
		err := svc.Burn(asActor(addr("02")), identity.ID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("holder burns own identity", func(t *testing.T) {
		require.NoError(t, svc.Burn(asActor(holder), identity.ID))
		_, err := svc.Get(context.Background(), identity.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("burner role burns someone else's identity", func(t *testing.T) {
		other, err := svc.Mint(context.Background(), holder)
		require.NoError(t, err)
		require.NoError(t, svc.Burn(asActor(burner), other.ID))
	})

	t.Run("burning a missing id fails with not_found", func(t *testing.T) {
		err := svc.Burn(asActor(holder), 999)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestService_Transfer(t *testing.T) {
	svc, guard, _ := newTestService(t)
	from, to := addr("03"), addr("04")

	identity, err := svc.Mint(context.Background(), from)
	require.NoError(t, err)

	t.Run("zero recipient rejected", func(t *testing.T) {
		err := svc.Transfer(asActor(from), from, domain.ZeroAddress, identity.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("wrong from rejected", func(t *testing.T) {
		err := svc.Transfer(asActor(to), to, addr("05"), identity.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("non-holder actor rejected", func(t *testing.T) {
		err := svc.Transfer(asActor(to), from, to, identity.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("guard blocks while paused", func(t *testing.T) {
		guard.blocked = true
		err := svc.Transfer(asActor(from), from, to, identity.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeTransferBlocked))

		owner, err := svc.OwnerOf(context.Background(), identity.ID)
		require.NoError(t, err)
		assert.Equal(t, from, owner, "blocked transfer must not move the identity")
	})

	t.Run("minting still succeeds while paused", func(t *testing.T) {
		guard.blocked = true
		_, err := svc.Mint(context.Background(), addr("06"))
		require.NoError(t, err)
	})

	t.Run("transfer succeeds when active", func(t *testing.T) {
		guard.blocked = false
		require.NoError(t, svc.Transfer(asActor(from), from, to, identity.ID))

		owner, err := svc.OwnerOf(context.Background(), identity.ID)
		require.NoError(t, err)
		assert.Equal(t, to, owner)
	})
}

func TestService_MetadataPointer(t *testing.T) {
	svc, _, _ := newTestService(t)
	holder := addr("07")

	identity, err := svc.Mint(context.Background(), holder)
	require.NoError(t, err)

	t.Run("non-holder rejected", func(t *testing.T) {
		err := svc.SetMetadataPointer(asActor(addr("08")), identity.ID, "data:text/plain,hi")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("unknown id fails with not_found", func(t *testing.T) {
		err := svc.SetMetadataPointer(asActor(holder), 999, "data:text/plain,hi")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("holder sets pointer", func(t *testing.T) {
		require.NoError(t, svc.SetMetadataPointer(asActor(holder), identity.ID, "data:text/plain,hi"))
		got, err := svc.Get(context.Background(), identity.ID)
		require.NoError(t, err)
		assert.Equal(t, "data:text/plain,hi", got.MetadataPointer)
	})
}

func TestService_VotingUnitsTracksBalance(t *testing.T) {
	svc, _, _ := newTestService(t)
	holder := addr("09")

	units, err := svc.VotingUnits(context.Background(), holder)
	require.NoError(t, err)
	assert.Zero(t, units)

	_, err = svc.Mint(context.Background(), holder)
	require.NoError(t, err)
	_, err = svc.Mint(context.Background(), holder)
	require.NoError(t, err)

	units, err = svc.VotingUnits(context.Background(), holder)
	require.NoError(t, err)
	assert.Equal(t, 2, units)
}
