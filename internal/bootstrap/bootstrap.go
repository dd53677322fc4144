// Package bootstrap provisions and cross-wires the registry's subordinate
// components in one constructor-time step. Nothing here is reachable over
// HTTP; main runs Bootstrap before the server starts listening, so no
// partial component set is ever observable.
package bootstrap

import (
	"context"
	"log/slog"

	"syndicate/internal/components"
	"syndicate/internal/platform/config"
	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
)

const (
	shareNameSuffix   = " Shares"
	shareSymbolSuffix = "-S"
)

// LedgerComponentName keys the identity ledger's pseudo-address, used as the
// treasury's back-reference.
const LedgerComponentName = "ledger"

// Result is what Bootstrap hands to the rest of the process: the wired
// component set, the deployer that holds the temporary elevated roles, and
// the settings snapshot consumed later by the governance handoff.
type Result struct {
	Components *components.ComponentSet
	Deployer   domain.Address
	Settings   config.DAOSettings
}

// Option configures Bootstrap.
type Option func(*bootstrapper)

// WithRoleStore overrides how per-component role stores are created. Main
// uses this to put the equity and treasury role tables on Postgres next to
// the ledger's.
func WithRoleStore(factory func(component string) roles.Store) Option {
	return func(b *bootstrapper) { b.storeFor = factory }
}

func WithAudit(e roles.Emitter) Option    { return func(b *bootstrapper) { b.auditor = e } }
func WithMetrics(m *roles.Metrics) Option { return func(b *bootstrapper) { b.metrics = m } }
func WithLogger(l *slog.Logger) Option    { return func(b *bootstrapper) { b.logger = l } }

type bootstrapper struct {
	storeFor func(component string) roles.Store
	auditor  roles.Emitter
	metrics  *roles.Metrics
	logger   *slog.Logger
}

// Bootstrap creates the equity token, treasury, and both governors, wires
// their cross-references, and grants the deployer its temporary elevated
// roles. All-or-nothing: any seeding failure fails the whole call and the
// partially built set is discarded.
//
// The deployer ends up holding administrator, pauser, and inviter on the
// identity ledger, administrator, minter, and pauser on the equity token,
// and the timelock-admin role on the treasury. Everything except the ledger
// inviter role is stripped again by the governance handoff.
func Bootstrap(
	ctx context.Context,
	deployer domain.Address,
	membership config.MembershipConfig,
	share config.ShareConfig,
	dao config.DAOSettings,
	ledgerRoles *roles.Registry,
	opts ...Option,
) (*Result, error) {
	if deployer.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "deployer must not be the zero address")
	}

	b := &bootstrapper{
		storeFor: func(string) roles.Store { return roles.NewInMemory() },
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	shareName := share.Name
	if shareName == "" {
		shareName = membership.Name + shareNameSuffix
	}
	shareSymbol := share.Symbol
	if shareSymbol == "" {
		shareSymbol = membership.Symbol + shareSymbolSuffix
	}

	equityRoles := b.newRegistry("equity")
	equity := components.NewEquity(shareName, shareSymbol, equityRoles)

	treasuryRoles := b.newRegistry("treasury")
	treasury := components.NewTimelock(
		dao.TimelockDelay,
		components.DeriveAddress(LedgerComponentName),
		equity,
		components.InvestmentSettings{
			MinContribution: dao.MinContribution,
			MaxContribution: dao.MaxContribution,
			Open:            dao.InvestmentOpen,
		},
		treasuryRoles,
	)

	membershipGov := components.NewVotingBody("membership",
		components.DeriveAddress(LedgerComponentName), treasury.Address(), components.GovernorSettings{})
	shareGov := components.NewVotingBody("share",
		equity.Address(), treasury.Address(), components.GovernorSettings{})

	if err := ledgerRoles.Seed(ctx, map[domain.RoleID][]domain.Address{
		domain.RoleAdministrator: {deployer},
		domain.RolePauser:        {deployer},
		domain.RoleInviter:       {deployer},
	}); err != nil {
		return nil, err
	}
	if err := equityRoles.Seed(ctx, map[domain.RoleID][]domain.Address{
		domain.RoleAdministrator: {deployer},
		domain.RoleMinter:        {deployer},
		domain.RolePauser:        {deployer},
	}); err != nil {
		return nil, err
	}
	// The treasury administers itself: timelock-admin is its own admin and
	// governs proposer grants, so stripping the deployer's timelock-admin at
	// handoff leaves the treasury in sole control of its role table.
	if err := treasuryRoles.SeedAdmin(ctx, domain.RoleTimelockAdmin, domain.RoleTimelockAdmin); err != nil {
		return nil, err
	}
	if err := treasuryRoles.SeedAdmin(ctx, domain.RoleProposer, domain.RoleTimelockAdmin); err != nil {
		return nil, err
	}
	if err := treasuryRoles.Seed(ctx, map[domain.RoleID][]domain.Address{
		domain.RoleTimelockAdmin: {deployer, treasury.Address()},
	}); err != nil {
		return nil, err
	}

	set := &components.ComponentSet{
		Treasury:           treasury,
		MembershipGovernor: membershipGov,
		ShareToken:         equity,
	}
	set.ReplaceShareGovernor(shareGov)

	b.logger.InfoContext(ctx, "components bootstrapped",
		"deployer", deployer,
		"share_token", shareName,
		"share_symbol", shareSymbol,
		"treasury", treasury.Address(),
	)

	return &Result{Components: set, Deployer: deployer, Settings: dao}, nil
}

func (b *bootstrapper) newRegistry(component string) *roles.Registry {
	opts := []roles.Option{roles.WithLogger(b.logger)}
	if b.auditor != nil {
		opts = append(opts, roles.WithAudit(b.auditor))
	}
	if b.metrics != nil {
		opts = append(opts, roles.WithMetrics(b.metrics))
	}
	return roles.NewRegistry(component, b.storeFor(component), opts...)
}
