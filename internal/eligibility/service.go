package eligibility

import (
	"context"
	"log/slog"

	"syndicate/internal/audit"
	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/requestcontext"
)

// Verifier gates the self-claim path against the active commitment and lets
// inviter-role holders rotate it.
type Verifier struct {
	store   Store
	roles   *roles.Registry
	auditor roles.Emitter
	logger  *slog.Logger
}

func NewVerifier(store Store, reg *roles.Registry, auditor roles.Emitter, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{store: store, roles: reg, auditor: auditor, logger: logger}
}

// SetCommitment replaces the active root. Restricted to the inviter role.
// All proofs built against the prior root become invalid at once.
func (v *Verifier) SetCommitment(ctx context.Context, root domain.Digest) error {
	actor := requestcontext.Actor(ctx)
	if err := v.roles.Require(ctx, domain.RoleInviter, actor); err != nil {
		return err
	}
	if root.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "commitment root must not be zero")
	}
	if err := v.store.Replace(ctx, root); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to replace commitment")
	}

	if v.auditor != nil {
		if err := v.auditor.Emit(ctx, audit.Event{
			Kind:  audit.EventCommitmentRotated,
			Actor: actor,
			Attrs: []any{"root", root.String()},
		}); err != nil {
			v.logger.ErrorContext(ctx, "failed to emit commitment audit event", "error", err)
		}
	}
	return nil
}

// Current returns the active commitment root (zero if none set yet).
func (v *Verifier) Current(ctx context.Context) (domain.Digest, error) {
	root, err := v.store.Current(ctx)
	if err != nil {
		return domain.Digest{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read commitment")
	}
	return root, nil
}

// Verify checks the proof for claimant against the active commitment. A
// non-matching proof is an expected outcome and returns (false, nil); only
// store failures produce an error.
func (v *Verifier) Verify(ctx context.Context, proof []domain.Digest, claimant domain.Address) (bool, error) {
	root, err := v.Current(ctx)
	if err != nil {
		return false, err
	}
	return VerifyProof(proof, claimant, root), nil
}
