//go:build integration

package roles

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicate/pkg/domain"
	"syndicate/pkg/testutil/containers"
)

func TestPostgresStore_Roundtrip(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()
	t.Cleanup(func() { _ = pg.Truncate(ctx) })

	store := NewPostgres(pg.DB, "ledger")
	holder := domain.MustAddress("0x" + strings.Repeat("1a", 20))

	changed, err := store.Grant(ctx, domain.RolePauser, holder)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = store.Grant(ctx, domain.RolePauser, holder)
	require.NoError(t, err)
	assert.False(t, changed, "re-grant must be a no-op")

	held, err := store.Has(ctx, domain.RolePauser, holder)
	require.NoError(t, err)
	assert.True(t, held)

	// Components share the database but not assignments.
	other := NewPostgres(pg.DB, "equity")
	held, err = other.Has(ctx, domain.RolePauser, holder)
	require.NoError(t, err)
	assert.False(t, held)

	changed, err = store.Revoke(ctx, domain.RolePauser, holder)
	require.NoError(t, err)
	assert.True(t, changed)

	held, err = store.Has(ctx, domain.RolePauser, holder)
	require.NoError(t, err)
	assert.False(t, held)
}

func TestPostgresStore_AdminDelegation(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()
	t.Cleanup(func() { _ = pg.Truncate(ctx) })

	store := NewPostgres(pg.DB, "treasury")

	admin, err := store.AdminOf(ctx, domain.RoleProposer)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdministrator, admin, "unset roles default to the administrator")

	require.NoError(t, store.SetAdmin(ctx, domain.RoleProposer, domain.RoleTimelockAdmin))

	admin, err = store.AdminOf(ctx, domain.RoleProposer)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTimelockAdmin, admin)
}
