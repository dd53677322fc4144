package membership

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicate/internal/audit"
	"syndicate/internal/eligibility"
	"syndicate/internal/guard"
	"syndicate/internal/ledger"
	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/requestcontext"
)

func addr(b string) domain.Address {
	return domain.MustAddress("0x" + strings.Repeat(b, 20))
}

type testEnv struct {
	svc    *Service
	admin  domain.Address
	events *audit.InMemoryStore
	ledger *ledger.Service
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	admin := addr("0a")
	reg := roles.NewRegistry("ledger", roles.NewInMemory())
	require.NoError(t, reg.Seed(context.Background(), map[domain.RoleID][]domain.Address{
		domain.RoleAdministrator: {admin},
		domain.RolePauser:        {admin},
		domain.RoleInviter:       {admin},
	}))

	events := audit.NewInMemoryStore()
	pub := audit.NewPublisher(events)
	t.Cleanup(pub.Close)

	g := guard.NewService(guard.NewInMemory(), reg, pub, nil)
	l := ledger.NewService(ledger.NewInMemory(), reg, g, pub, nil)
	v := eligibility.NewVerifier(eligibility.NewInMemory(), reg, pub, nil)

	opts = append([]Option{WithAudit(pub)}, opts...)
	svc := NewService(l, v, g, reg, "https://acme.example/meta/", opts...)
	return &testEnv{svc: svc, admin: admin, events: events, ledger: l}
}

// whitelist puts exactly one address in the active commitment (a single-leaf
// tree, so the valid proof is empty).
func (e *testEnv) whitelist(t *testing.T, member domain.Address) {
	t.Helper()
	ctx := requestcontext.WithActor(context.Background(), e.admin)
	require.NoError(t, e.svc.RotateCommitment(ctx, eligibility.Leaf(member)))
}

func (e *testEnv) kinds() []audit.Kind {
	var out []audit.Kind
	for _, ev := range e.events.All() {
		out = append(out, ev.Kind)
	}
	return out
}

func TestClaim(t *testing.T) {
	t.Run("valid proof mints exactly once", func(t *testing.T) {
		env := newTestEnv(t)
		member := addr("1b")
		env.whitelist(t, member)

		ctx := requestcontext.WithActor(context.Background(), member)
		identity, err := env.svc.Claim(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.IdentityID(0), identity.ID)
		assert.Equal(t, member, identity.Holder)
		assert.False(t, identity.Investor)

		_, err = env.svc.Claim(ctx, nil)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAlreadyClaimed))

		assert.Contains(t, env.kinds(), audit.EventMembershipClaimed)
	})

	t.Run("invalid proof rejected", func(t *testing.T) {
		env := newTestEnv(t)
		env.whitelist(t, addr("1b"))

		ctx := requestcontext.WithActor(context.Background(), addr("2c"))
		_, err := env.svc.Claim(ctx, nil)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidProof))
	})

	t.Run("unauthenticated caller rejected", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.Claim(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("re-claim after burning the only identity is allowed", func(t *testing.T) {
		env := newTestEnv(t)
		member := addr("1b")
		env.whitelist(t, member)

		ctx := requestcontext.WithActor(context.Background(), member)
		first, err := env.svc.Claim(ctx, nil)
		require.NoError(t, err)
		require.NoError(t, env.ledger.Burn(ctx, first.ID))

		second, err := env.svc.Claim(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.IdentityID(1), second.ID, "burned ids are never reused")
	})
}

type denyThrottle struct{}

func (denyThrottle) Allow(context.Context, domain.Address) error {
	return dErrors.New(dErrors.CodeRateLimited, "too many claim attempts")
}

func TestClaim_Throttled(t *testing.T) {
	env := newTestEnv(t, WithThrottle(denyThrottle{}))
	member := addr("1b")
	env.whitelist(t, member)

	ctx := requestcontext.WithActor(context.Background(), member)
	_, err := env.svc.Claim(ctx, nil)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeRateLimited))
}

func TestInvestMint(t *testing.T) {
	t.Run("fresh address gets a new investor identity", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := requestcontext.WithActor(context.Background(), env.admin)

		identity, err := env.svc.InvestMint(ctx, addr("3d"))
		require.NoError(t, err)
		assert.True(t, identity.Investor)
		assert.Equal(t, addr("3d"), identity.Holder)
		assert.Contains(t, env.kinds(), audit.EventInvestorAdded)
	})

	t.Run("existing holder is promoted, not reminted", func(t *testing.T) {
		env := newTestEnv(t)
		member := addr("1b")
		env.whitelist(t, member)

		memberCtx := requestcontext.WithActor(context.Background(), member)
		claimed, err := env.svc.Claim(memberCtx, nil)
		require.NoError(t, err)

		adminCtx := requestcontext.WithActor(context.Background(), env.admin)
		promoted, err := env.svc.InvestMint(adminCtx, member)
		require.NoError(t, err)
		assert.Equal(t, claimed.ID, promoted.ID)
		assert.True(t, promoted.Investor)

		balance, err := env.ledger.BalanceOf(adminCtx, member)
		require.NoError(t, err)
		assert.Equal(t, 1, balance, "promotion must not mint")
	})

	t.Run("non-administrator rejected", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := requestcontext.WithActor(context.Background(), addr("2c"))
		_, err := env.svc.InvestMint(ctx, addr("3d"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("zero recipient rejected", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := requestcontext.WithActor(context.Background(), env.admin)
		_, err := env.svc.InvestMint(ctx, domain.ZeroAddress)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestResolveURI(t *testing.T) {
	env := newTestEnv(t)
	member := addr("1b")
	env.whitelist(t, member)

	ctx := requestcontext.WithActor(context.Background(), member)
	identity, err := env.svc.Claim(ctx, nil)
	require.NoError(t, err)

	t.Run("falls back to base path plus id", func(t *testing.T) {
		uri, err := env.svc.ResolveURI(ctx, identity.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://acme.example/meta/0", uri)
	})

	t.Run("custom pointer wins once set", func(t *testing.T) {
		require.NoError(t, env.svc.SetMetadataPointer(ctx, identity.ID, "data:application/json;base64,e30="))
		uri, err := env.svc.ResolveURI(ctx, identity.ID)
		require.NoError(t, err)
		assert.Equal(t, "data:application/json;base64,e30=", uri)
	})

	t.Run("unminted id fails", func(t *testing.T) {
		_, err := env.svc.ResolveURI(ctx, domain.IdentityID(99))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestPauseDelegation(t *testing.T) {
	env := newTestEnv(t)
	adminCtx := requestcontext.WithActor(context.Background(), env.admin)

	require.NoError(t, env.svc.Pause(adminCtx))
	assert.Contains(t, env.kinds(), audit.EventTransfersPaused)

	// Minting is exempt from the guard, so claims still work while paused.
	member := addr("1b")
	env.whitelist(t, member)
	memberCtx := requestcontext.WithActor(context.Background(), member)
	_, err := env.svc.Claim(memberCtx, nil)
	require.NoError(t, err)

	require.NoError(t, env.svc.Unpause(adminCtx))
}
