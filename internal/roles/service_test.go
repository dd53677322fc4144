package roles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicate/internal/audit"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/requestcontext"
)

func newTestRegistry(t *testing.T) (*Registry, *audit.InMemoryStore, domain.Address) {
	t.Helper()
	store := NewInMemory()
	sink := audit.NewInMemoryStore()
	reg := NewRegistry("ledger", store, WithAudit(audit.NewPublisher(sink)))

	admin := addr("aa")
	require.NoError(t, reg.Seed(context.Background(), map[domain.RoleID][]domain.Address{
		domain.RoleAdministrator: {admin},
	}))
	return reg, sink, admin
}

func asActor(actor domain.Address) context.Context {
	return requestcontext.WithActor(context.Background(), actor)
}

func TestRegistry_GrantRequiresAdminRole(t *testing.T) {
	reg, _, admin := newTestRegistry(t)
	stranger := addr("bb")
	holder := addr("cc")

	t.Run("non-admin cannot grant", func(t *testing.T) {
		err := reg.Grant(asActor(stranger), domain.RoleInviter, holder)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("admin grants", func(t *testing.T) {
		require.NoError(t, reg.Grant(asActor(admin), domain.RoleInviter, holder))

		held, err := reg.Has(context.Background(), domain.RoleInviter, holder)
		require.NoError(t, err)
		assert.True(t, held)
	})

	t.Run("granted holder still cannot administer", func(t *testing.T) {
		err := reg.Grant(asActor(holder), domain.RoleInviter, stranger)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func TestRegistry_IdempotentMutationsStaySilent(t *testing.T) {
	reg, sink, admin := newTestRegistry(t)
	holder := addr("dd")
	ctx := asActor(admin)

	require.NoError(t, reg.Grant(ctx, domain.RolePauser, holder))
	require.NoError(t, reg.Grant(ctx, domain.RolePauser, holder))
	require.NoError(t, reg.Revoke(ctx, domain.RolePauser, holder))
	require.NoError(t, reg.Revoke(ctx, domain.RolePauser, holder))

	events := sink.All()
	require.Len(t, events, 2, "no-op grant/revoke must not emit audit events")
	assert.Equal(t, audit.EventRoleGranted, events[0].Kind)
	assert.Equal(t, audit.EventRoleRevoked, events[1].Kind)
	assert.Equal(t, "ledger", events[0].Component)
	assert.Equal(t, "pauser", events[0].Role)
	assert.Equal(t, admin, events[0].Actor)
	assert.Equal(t, holder, events[0].Subject)
}

func TestRegistry_SelfAdministeringAdministrator(t *testing.T) {
	reg, _, admin := newTestRegistry(t)
	successor := addr("ee")

	// An administrator can appoint and dismiss other administrators.
	require.NoError(t, reg.Grant(asActor(admin), domain.RoleAdministrator, successor))
	require.NoError(t, reg.Revoke(asActor(successor), domain.RoleAdministrator, admin))

	held, err := reg.Has(context.Background(), domain.RoleAdministrator, admin)
	require.NoError(t, err)
	assert.False(t, held, "original admin stripped by successor")
}

func TestRegistry_DelegatedAdminRole(t *testing.T) {
	reg, _, admin := newTestRegistry(t)
	operator := addr("0f")
	holder := addr("1f")

	// Delegate minter administration to the timelock-admin role.
	require.NoError(t, reg.SetAdminRole(asActor(admin), domain.RoleMinter, domain.RoleTimelockAdmin))
	require.NoError(t, reg.Grant(asActor(admin), domain.RoleTimelockAdmin, operator))

	t.Run("delegated admin can grant", func(t *testing.T) {
		require.NoError(t, reg.Grant(asActor(operator), domain.RoleMinter, holder))
	})

	t.Run("administrator no longer administers the delegated role", func(t *testing.T) {
		err := reg.Grant(asActor(admin), domain.RoleMinter, addr("2f"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("only administrators may redirect admin roles", func(t *testing.T) {
		err := reg.SetAdminRole(asActor(operator), domain.RolePauser, domain.RoleTimelockAdmin)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func TestRegistry_Require(t *testing.T) {
	reg, _, admin := newTestRegistry(t)

	require.NoError(t, reg.Require(context.Background(), domain.RoleAdministrator, admin))

	err := reg.Require(context.Background(), domain.RolePauser, admin)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
