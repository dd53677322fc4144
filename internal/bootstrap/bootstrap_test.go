package bootstrap

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicate/internal/components"
	"syndicate/internal/platform/config"
	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
)

func addr(b string) domain.Address {
	return domain.MustAddress("0x" + strings.Repeat(b, 20))
}

func acmeMembership() config.MembershipConfig {
	return config.MembershipConfig{Name: "Acme DAO", Symbol: "ACME", BaseURI: "https://acme.example/meta/"}
}

func TestBootstrap_DerivesEquityNaming(t *testing.T) {
	deployer := addr("1a")
	ledgerRoles := roles.NewRegistry("ledger", roles.NewInMemory())

	res, err := Bootstrap(context.Background(), deployer, acmeMembership(), config.ShareConfig{},
		config.DAOSettings{TimelockDelay: 48 * time.Hour}, ledgerRoles)
	require.NoError(t, err)

	assert.Equal(t, "Acme DAO Shares", res.Components.ShareToken.Name())
	assert.Equal(t, "ACME-S", res.Components.ShareToken.Symbol())
}

func TestBootstrap_ExplicitEquityNamingWins(t *testing.T) {
	deployer := addr("1a")
	ledgerRoles := roles.NewRegistry("ledger", roles.NewInMemory())

	res, err := Bootstrap(context.Background(), deployer, acmeMembership(),
		config.ShareConfig{Name: "Acme Equity", Symbol: "AEQ"},
		config.DAOSettings{}, ledgerRoles)
	require.NoError(t, err)

	assert.Equal(t, "Acme Equity", res.Components.ShareToken.Name())
	assert.Equal(t, "AEQ", res.Components.ShareToken.Symbol())
}

func TestBootstrap_SeedsDeployerRoles(t *testing.T) {
	ctx := context.Background()
	deployer := addr("1a")
	ledgerRoles := roles.NewRegistry("ledger", roles.NewInMemory())

	res, err := Bootstrap(ctx, deployer, acmeMembership(), config.ShareConfig{}, config.DAOSettings{}, ledgerRoles)
	require.NoError(t, err)

	for _, role := range []domain.RoleID{domain.RoleAdministrator, domain.RolePauser, domain.RoleInviter} {
		held, err := ledgerRoles.Has(ctx, role, deployer)
		require.NoError(t, err)
		assert.True(t, held, "deployer should hold %s on the ledger", role.Name())
	}

	for _, role := range []domain.RoleID{domain.RoleAdministrator, domain.RoleMinter, domain.RolePauser} {
		held, err := res.Components.ShareToken.HasRole(ctx, role, deployer)
		require.NoError(t, err)
		assert.True(t, held, "deployer should hold %s on the equity token", role.Name())
	}

	held, err := res.Components.Treasury.HasRole(ctx, domain.RoleTimelockAdmin, deployer)
	require.NoError(t, err)
	assert.True(t, held, "deployer should hold the temporary timelock-admin role")

	held, err = res.Components.Treasury.HasRole(ctx, domain.RoleTimelockAdmin, res.Components.Treasury.Address())
	require.NoError(t, err)
	assert.True(t, held, "treasury should administer itself")
}

func TestBootstrap_WiresComponentSet(t *testing.T) {
	deployer := addr("1a")
	ledgerRoles := roles.NewRegistry("ledger", roles.NewInMemory())

	res, err := Bootstrap(context.Background(), deployer, acmeMembership(), config.ShareConfig{},
		config.DAOSettings{TimelockDelay: 72 * time.Hour, InitialShareSupply: 1_000}, ledgerRoles)
	require.NoError(t, err)

	set := res.Components
	require.NotNil(t, set.Treasury)
	require.NotNil(t, set.MembershipGovernor)
	require.NotNil(t, set.ShareGovernor())
	require.NotNil(t, set.ShareToken)

	assert.NotEqual(t, set.Treasury.Address(), set.ShareToken.Address())
	assert.NotEqual(t, set.MembershipGovernor.Address(), set.ShareGovernor().Address())

	// The settings snapshot survives untouched for handoff.
	assert.Equal(t, uint64(1_000), res.Settings.InitialShareSupply)
	assert.Equal(t, 72*time.Hour, res.Settings.TimelockDelay)
	assert.Equal(t, deployer, res.Deployer)
}

func TestBootstrap_ThreadsInvestmentSettings(t *testing.T) {
	deployer := addr("1a")
	ledgerRoles := roles.NewRegistry("ledger", roles.NewInMemory())

	res, err := Bootstrap(context.Background(), deployer, acmeMembership(), config.ShareConfig{},
		config.DAOSettings{
			InvestmentOpen:  true,
			MinContribution: 500,
			MaxContribution: 25_000,
		}, ledgerRoles)
	require.NoError(t, err)

	timelock, ok := res.Components.Treasury.(*components.Timelock)
	require.True(t, ok)
	investment := timelock.Investment()
	assert.True(t, investment.Open)
	assert.Equal(t, uint64(500), investment.MinContribution)
	assert.Equal(t, uint64(25_000), investment.MaxContribution)
}

func TestBootstrap_RejectsZeroDeployer(t *testing.T) {
	ledgerRoles := roles.NewRegistry("ledger", roles.NewInMemory())
	_, err := Bootstrap(context.Background(), domain.ZeroAddress, acmeMembership(), config.ShareConfig{},
		config.DAOSettings{}, ledgerRoles)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
