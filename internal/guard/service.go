package guard

import (
	"context"
	"log/slog"

	"syndicate/internal/audit"
	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/requestcontext"
)

// Service transitions the guard between Active and Paused and answers the
// transfer check the ledger consults. Pausing has no effect on role grants,
// metadata updates, or minting.
type Service struct {
	store   Store
	roles   *roles.Registry
	auditor roles.Emitter
	logger  *slog.Logger
}

func NewService(store Store, reg *roles.Registry, auditor roles.Emitter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, roles: reg, auditor: auditor, logger: logger}
}

// Pause engages the guard. Requires the pauser role; the transition itself is
// unconditional given authorization (pausing an already-paused guard holds).
func (s *Service) Pause(ctx context.Context) error {
	return s.setPaused(ctx, true, audit.EventTransfersPaused)
}

// Unpause disengages the guard. Requires the pauser role.
func (s *Service) Unpause(ctx context.Context) error {
	return s.setPaused(ctx, false, audit.EventTransfersUnpaused)
}

// Paused reports the current state.
func (s *Service) Paused(ctx context.Context) (bool, error) {
	paused, err := s.store.Paused(ctx)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read guard state")
	}
	return paused, nil
}

// CheckTransfer is the hook the ledger invokes before any transfer whose
// source is non-zero. Mint (zero source) is exempt by contract and the
// ledger never calls the hook for it.
func (s *Service) CheckTransfer(ctx context.Context, from, to domain.Address, id domain.IdentityID) error {
	paused, err := s.Paused(ctx)
	if err != nil {
		return err
	}
	if paused {
		return dErrors.New(dErrors.CodeTransferBlocked, "identity transfers are paused")
	}
	return nil
}

func (s *Service) setPaused(ctx context.Context, paused bool, kind audit.Kind) error {
	actor := requestcontext.Actor(ctx)
	if err := s.roles.Require(ctx, domain.RolePauser, actor); err != nil {
		return err
	}
	if err := s.store.SetPaused(ctx, paused); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update guard state")
	}
	if s.auditor != nil {
		if err := s.auditor.Emit(ctx, audit.Event{Kind: kind, Component: "ledger", Actor: actor}); err != nil {
			s.logger.ErrorContext(ctx, "failed to emit guard audit event", "error", err)
		}
	}
	return nil
}
