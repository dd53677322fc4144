// Package handoff implements the one-shot transfer of administrative
// control from the deployer to the treasury.
package handoff

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"syndicate/internal/audit"
	"syndicate/internal/components"
	"syndicate/internal/guard"
	"syndicate/internal/platform/config"
	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/platform/sentinel"
	"syndicate/pkg/requestcontext"
)

// Service runs the finalize sequence. One instance per process; the mutex
// serializes concurrent finalize attempts so exactly one can win.
type Service struct {
	ledgerRoles *roles.Registry
	guard       *guard.Service
	set         *components.ComponentSet
	deployer    domain.Address
	settings    config.DAOSettings
	store       Store
	auditor     roles.Emitter
	logger      *slog.Logger

	mu sync.Mutex
}

func NewService(
	ledgerRoles *roles.Registry,
	g *guard.Service,
	set *components.ComponentSet,
	deployer domain.Address,
	settings config.DAOSettings,
	store Store,
	auditor roles.Emitter,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ledgerRoles: ledgerRoles,
		guard:       g,
		set:         set,
		deployer:    deployer,
		settings:    settings,
		store:       store,
		auditor:     auditor,
		logger:      logger,
	}
}

// Finalize hands control to the treasury. Callable only by a ledger
// administrator, and only once: a repeat call fails with Conflict. The step
// order is load-bearing. Later steps depend on roles granted by earlier
// ones, and the deployer's elevated roles must survive until the last step
// that needs them, so there is never a window where the treasury has
// partial control while the deployer keeps any.
//
// Sequence:
//  1. Grant proposer, on the treasury, to both governors.
//  2. If the initial share supply is positive, mint it to the treasury and
//     apply the initial split policy.
//  3. Revoke the deployer's temporary timelock-admin role on the treasury.
//  4. Grant administrator on the ledger and the equity token, plus minter
//     and pauser on the equity token, to the treasury.
//  5. Revoke minter, pauser, and administrator on the equity token from the
//     deployer.
//  6. If identity transferability is disabled, engage the transfer guard
//     (still possible: pauser is not revoked until step 7).
//  7. Revoke pauser and administrator on the ledger from the deployer. The
//     inviter role stays with the deployer so whitelist rotation continues
//     without administrative power.
//
// Step 6 is the only step with a precondition beyond the administrator
// check, so the actor's pauser role is validated up front: by step 6 the
// deployer's treasury and equity roles are already gone, and an abort there
// would leave partial state no remaining actor could unwind.
//
// Any step failure aborts the whole call and the finalized flag stays
// unset; no step is individually retried.
func (s *Service) Finalize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Checked before authorization so a repeat call reports Conflict even
	// after the caller's administrator role has been stripped.
	done, err := s.store.Finalized(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read handoff state")
	}
	if done {
		return dErrors.New(dErrors.CodeConflict, "governance handoff already finalized")
	}

	actor := requestcontext.Actor(ctx)
	if err := s.ledgerRoles.Require(ctx, domain.RoleAdministrator, actor); err != nil {
		return err
	}
	if !s.settings.TransferableIdentity {
		if err := s.ledgerRoles.Require(ctx, domain.RolePauser, actor); err != nil {
			return dErrors.New(dErrors.CodeUnauthorized,
				"cannot disable identity transferability: caller does not hold the pauser role")
		}
	}

	treasury := s.set.Treasury
	equity := s.set.ShareToken

	// Step 1.
	if err := treasury.GrantRole(ctx, domain.RoleProposer, s.set.MembershipGovernor.Address()); err != nil {
		return err
	}
	if err := treasury.GrantRole(ctx, domain.RoleProposer, s.set.ShareGovernor().Address()); err != nil {
		return err
	}

	// Step 2.
	if s.settings.InitialShareSupply > 0 {
		if err := equity.Mint(ctx, treasury.Address(), s.settings.InitialShareSupply); err != nil {
			return err
		}
		if err := treasury.UpdateShareSplit(ctx, s.settings.InitialShareSplitBPS); err != nil {
			return err
		}
	}

	// Step 3.
	if err := treasury.RevokeRole(ctx, domain.RoleTimelockAdmin, s.deployer); err != nil {
		return err
	}

	// Step 4.
	if err := s.ledgerRoles.Grant(ctx, domain.RoleAdministrator, treasury.Address()); err != nil {
		return err
	}
	for _, role := range []domain.RoleID{domain.RoleAdministrator, domain.RoleMinter, domain.RolePauser} {
		if err := equity.GrantRole(ctx, role, treasury.Address()); err != nil {
			return err
		}
	}

	// Step 5. Administrator goes last so the revocations stay authorized.
	for _, role := range []domain.RoleID{domain.RoleMinter, domain.RolePauser, domain.RoleAdministrator} {
		if err := equity.RevokeRole(ctx, role, s.deployer); err != nil {
			return err
		}
	}

	// Step 6. The up-front pauser check keeps this from failing on
	// authorization after the earlier steps have applied.
	if !s.settings.TransferableIdentity {
		if err := s.guard.Pause(ctx); err != nil {
			return err
		}
	}

	// Step 7. Administrator goes last here too.
	if err := s.ledgerRoles.Revoke(ctx, domain.RolePauser, s.deployer); err != nil {
		return err
	}
	if err := s.ledgerRoles.Revoke(ctx, domain.RoleAdministrator, s.deployer); err != nil {
		return err
	}

	if err := s.store.MarkFinalized(ctx); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.New(dErrors.CodeConflict, "governance handoff already finalized")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record handoff completion")
	}

	if s.auditor != nil {
		if err := s.auditor.Emit(ctx, audit.Event{
			Kind:    audit.EventHandoffFinalized,
			Actor:   actor,
			Subject: treasury.Address(),
			Attrs:   []any{"initial_share_supply", s.settings.InitialShareSupply},
		}); err != nil {
			s.logger.ErrorContext(ctx, "failed to emit handoff audit event", "error", err)
		}
	}

	s.logger.InfoContext(ctx, "governance handoff finalized",
		"actor", actor,
		"treasury", treasury.Address(),
	)
	return nil
}

// Finalized reports whether the handoff has completed.
func (s *Service) Finalized(ctx context.Context) (bool, error) {
	done, err := s.store.Finalized(ctx)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read handoff state")
	}
	return done, nil
}
