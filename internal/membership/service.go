// Package membership composes the ledger, eligibility verifier, transfer
// guard, and role registry into the registry's public lifecycle operations.
package membership

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"syndicate/internal/audit"
	"syndicate/internal/eligibility"
	"syndicate/internal/guard"
	"syndicate/internal/ledger"
	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/requestcontext"
)

const tracerName = "syndicate/membership"

// Service is the composed membership surface the HTTP handler exposes.
type Service struct {
	ledger   *ledger.Service
	verifier *eligibility.Verifier
	guard    *guard.Service
	roles    *roles.Registry
	throttle Throttle
	auditor  roles.Emitter
	metrics  *Metrics
	tracer   trace.Tracer
	baseURI  string
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

func WithThrottle(t Throttle) Option   { return func(s *Service) { s.throttle = t } }
func WithAudit(e roles.Emitter) Option { return func(s *Service) { s.auditor = e } }
func WithMetrics(m *Metrics) Option    { return func(s *Service) { s.metrics = m } }
func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.logger = l } }

func NewService(
	l *ledger.Service,
	v *eligibility.Verifier,
	g *guard.Service,
	reg *roles.Registry,
	baseURI string,
	opts ...Option,
) *Service {
	s := &Service{
		ledger:   l,
		verifier: v,
		guard:    g,
		roles:    reg,
		throttle: NoopThrottle{},
		tracer:   otel.Tracer(tracerName),
		baseURI:  baseURI,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Claim mints a membership identity to the caller after proving whitelist
// inclusion. Uniqueness is balance-based: an address holding any identity
// cannot claim again, but one that burned its only identity can.
func (s *Service) Claim(ctx context.Context, proof []domain.Digest) (ledger.Identity, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "membership.Claim")
	defer span.End()

	actor := requestcontext.Actor(ctx)
	span.SetAttributes(attribute.String("membership.claimant", actor.String()))
	if actor.IsZero() {
		return ledger.Identity{}, s.claimOutcome(start, "error",
			dErrors.New(dErrors.CodeUnauthorized, "claim requires an authenticated caller"))
	}

	if err := s.throttle.Allow(ctx, actor); err != nil {
		return ledger.Identity{}, s.claimOutcome(start, "throttled", err)
	}

	balance, err := s.ledger.BalanceOf(ctx, actor)
	if err != nil {
		return ledger.Identity{}, s.claimOutcome(start, "error", err)
	}
	if balance > 0 {
		return ledger.Identity{}, s.claimOutcome(start, "already_claimed",
			dErrors.New(dErrors.CodeAlreadyClaimed, "caller already holds a membership identity"))
	}

	ok, err := s.verifier.Verify(ctx, proof, actor)
	if err != nil {
		return ledger.Identity{}, s.claimOutcome(start, "error", err)
	}
	if !ok {
		return ledger.Identity{}, s.claimOutcome(start, "invalid_proof",
			dErrors.New(dErrors.CodeInvalidProof, "proof does not match the active commitment"))
	}

	identity, err := s.ledger.Mint(ctx, actor)
	if err != nil {
		return ledger.Identity{}, s.claimOutcome(start, "error", err)
	}
	span.SetAttributes(attribute.Int64("membership.identity_id", int64(identity.ID)))

	s.emit(ctx, audit.Event{
		Kind:     audit.EventMembershipClaimed,
		Actor:    actor,
		Subject:  actor,
		Identity: identity.ID.String(),
	})
	if s.metrics != nil {
		s.metrics.ObserveClaim("claimed", time.Since(start))
	}
	return identity, nil
}

// InvestMint adds to as an investor. Restricted to administrators. If to
// already holds an identity its first-held one is promoted; otherwise a new
// investor identity is minted.
func (s *Service) InvestMint(ctx context.Context, to domain.Address) (ledger.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "membership.InvestMint")
	defer span.End()

	actor := requestcontext.Actor(ctx)
	if err := s.roles.Require(ctx, domain.RoleAdministrator, actor); err != nil {
		return ledger.Identity{}, err
	}
	if to.IsZero() {
		return ledger.Identity{}, dErrors.New(dErrors.CodeInvalidInput, "recipient must not be the zero address")
	}

	balance, err := s.ledger.BalanceOf(ctx, to)
	if err != nil {
		return ledger.Identity{}, err
	}

	var identity ledger.Identity
	promoted := balance > 0
	if promoted {
		identity, err = s.ledger.FirstHeld(ctx, to)
		if err != nil {
			return ledger.Identity{}, err
		}
	} else {
		identity, err = s.ledger.Mint(ctx, to)
		if err != nil {
			return ledger.Identity{}, err
		}
	}
	if err := s.ledger.MarkInvestor(ctx, identity.ID); err != nil {
		return ledger.Identity{}, err
	}
	identity.Investor = true

	span.SetAttributes(
		attribute.Int64("membership.identity_id", int64(identity.ID)),
		attribute.Bool("membership.promoted", promoted),
	)
	s.emit(ctx, audit.Event{
		Kind:     audit.EventInvestorAdded,
		Actor:    actor,
		Subject:  to,
		Identity: identity.ID.String(),
		Attrs:    []any{"timestamp", requestcontext.Now(ctx).Format(time.RFC3339), "promoted", strconv.FormatBool(promoted)},
	})
	if s.metrics != nil {
		s.metrics.ObserveInvestorMint(promoted)
	}
	return identity, nil
}

// RotateCommitment replaces the active whitelist commitment. Inviter only.
func (s *Service) RotateCommitment(ctx context.Context, root domain.Digest) error {
	return s.verifier.SetCommitment(ctx, root)
}

// Pause blocks identity transfers. Pauser only.
func (s *Service) Pause(ctx context.Context) error {
	return s.guard.Pause(ctx)
}

// Unpause restores identity transfers. Pauser only.
func (s *Service) Unpause(ctx context.Context) error {
	return s.guard.Unpause(ctx)
}

// Get returns one identity.
func (s *Service) Get(ctx context.Context, id domain.IdentityID) (ledger.Identity, error) {
	return s.ledger.Get(ctx, id)
}

// SetMetadataPointer stores a custom metadata pointer. Holder only.
func (s *Service) SetMetadataPointer(ctx context.Context, id domain.IdentityID, pointer string) error {
	return s.ledger.SetMetadataPointer(ctx, id, pointer)
}

// ResolveURI returns the metadata URI for id: the persisted custom pointer
// when one is set, otherwise the base path plus the id.
func (s *Service) ResolveURI(ctx context.Context, id domain.IdentityID) (string, error) {
	identity, err := s.ledger.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if identity.MetadataPointer != "" {
		return identity.MetadataPointer, nil
	}
	return s.baseURI + id.String(), nil
}

func (s *Service) claimOutcome(start time.Time, outcome string, err error) error {
	if s.metrics != nil {
		s.metrics.ObserveClaim(outcome, time.Since(start))
	}
	return err
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit membership audit event", "kind", event.Kind, "error", err)
	}
}
