package ledger

import (
	"context"
	"errors"
	"log/slog"

	"syndicate/internal/audit"
	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/platform/sentinel"
	"syndicate/pkg/requestcontext"
)

// TransferHook is consulted before any transfer whose source is non-zero.
// Mint never invokes it.
type TransferHook interface {
	CheckTransfer(ctx context.Context, from, to domain.Address, id domain.IdentityID) error
}

// Service wraps the store with ownership checks, the transfer guard hook,
// and audit. Hook order on transfer is fixed: validate, guard, mutate, audit.
type Service struct {
	store   Store
	roles   *roles.Registry
	guard   TransferHook
	auditor roles.Emitter
	logger  *slog.Logger
}

func NewService(store Store, reg *roles.Registry, guard TransferHook, auditor roles.Emitter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, roles: reg, guard: guard, auditor: auditor, logger: logger}
}

// Mint creates a new identity for holder at the next counter value. Fails
// with invalid_input for the zero address. Authorization is the caller's
// concern: the claim and investor-mint paths gate access before minting.
func (s *Service) Mint(ctx context.Context, holder domain.Address) (Identity, error) {
	if holder.IsZero() {
		return Identity{}, dErrors.New(dErrors.CodeInvalidInput, "holder must not be the zero address")
	}
	identity, err := s.store.Mint(ctx, holder, requestcontext.Now(ctx))
	if err != nil {
		return Identity{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to mint identity")
	}
	return identity, nil
}

// Burn removes an identity. The actor must be the holder or hold the burner
// role.
func (s *Service) Burn(ctx context.Context, id domain.IdentityID) error {
	identity, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	actor := requestcontext.Actor(ctx)
	if identity.Holder != actor {
		if err := s.roles.Require(ctx, domain.RoleBurner, actor); err != nil {
			return dErrors.New(dErrors.CodeUnauthorized, "only the holder or a burner may burn an identity")
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return translateStoreErr(err, "failed to burn identity")
	}

	s.emit(ctx, audit.Event{
		Kind:     audit.EventIdentityBurned,
		Actor:    actor,
		Subject:  identity.Holder,
		Identity: id.String(),
	})
	return nil
}

// Transfer reassigns id from one holder to another. The guard hook runs
// after validation and before the mutation; while the guard is paused every
// transfer fails with transfer_blocked.
func (s *Service) Transfer(ctx context.Context, from, to domain.Address, id domain.IdentityID) error {
	if to.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "recipient must not be the zero address")
	}

	identity, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if identity.Holder != from {
		return dErrors.New(dErrors.CodeUnauthorized, "from is not the current holder")
	}
	actor := requestcontext.Actor(ctx)
	if actor != from {
		return dErrors.New(dErrors.CodeUnauthorized, "only the holder may transfer an identity")
	}

	if s.guard != nil && !from.IsZero() {
		if err := s.guard.CheckTransfer(ctx, from, to, id); err != nil {
			return err
		}
	}

	if err := s.store.SetHolder(ctx, id, to); err != nil {
		return translateStoreErr(err, "failed to transfer identity")
	}

	s.emit(ctx, audit.Event{
		Kind:     audit.EventIdentityTransfered,
		Actor:    actor,
		Subject:  to,
		Identity: id.String(),
	})
	return nil
}

// Get returns the identity or not_found if it was never minted or has been
// burned.
func (s *Service) Get(ctx context.Context, id domain.IdentityID) (Identity, error) {
	identity, err := s.store.Get(ctx, id)
	if err != nil {
		return Identity{}, translateStoreErr(err, "failed to load identity")
	}
	return identity, nil
}

// OwnerOf returns the current holder of id.
func (s *Service) OwnerOf(ctx context.Context, id domain.IdentityID) (domain.Address, error) {
	identity, err := s.Get(ctx, id)
	if err != nil {
		return domain.ZeroAddress, err
	}
	return identity.Holder, nil
}

// BalanceOf counts the identities held by holder.
func (s *Service) BalanceOf(ctx context.Context, holder domain.Address) (int, error) {
	count, err := s.store.BalanceOf(ctx, holder)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count identities")
	}
	return count, nil
}

// FirstHeld returns holder's lowest-numbered identity, or not_found.
func (s *Service) FirstHeld(ctx context.Context, holder domain.Address) (Identity, error) {
	identity, err := s.store.FirstHeld(ctx, holder)
	if err != nil {
		return Identity{}, translateStoreErr(err, "failed to load first-held identity")
	}
	return identity, nil
}

// VotingUnits reports holder's vote weight for the membership governor: one
// unit per held identity.
func (s *Service) VotingUnits(ctx context.Context, holder domain.Address) (int, error) {
	return s.BalanceOf(ctx, holder)
}

// SetMetadataPointer stores a custom metadata pointer for id. Permitted only
// to the current holder.
func (s *Service) SetMetadataPointer(ctx context.Context, id domain.IdentityID, pointer string) error {
	identity, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if identity.Holder != requestcontext.Actor(ctx) {
		return dErrors.New(dErrors.CodeUnauthorized, "only the holder may update identity metadata")
	}
	if err := s.store.SetMetadataPointer(ctx, id, pointer); err != nil {
		return translateStoreErr(err, "failed to update metadata pointer")
	}
	return nil
}

// MarkInvestor flags id as an investor identity. Internal to the
// investor-mint path, which performs the administrator check.
func (s *Service) MarkInvestor(ctx context.Context, id domain.IdentityID) error {
	if err := s.store.SetInvestor(ctx, id); err != nil {
		return translateStoreErr(err, "failed to mark investor")
	}
	return nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit ledger audit event", "kind", event.Kind, "error", err)
	}
}

func translateStoreErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "identity does not exist")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}
