package roles

import (
	"context"
	"log/slog"

	"syndicate/internal/audit"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/requestcontext"
)

// Emitter is the slice of the audit publisher the registry needs.
type Emitter interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Registry enforces role-gated access to the role table itself: granting or
// revoking a role requires the actor to hold that role's admin role. The
// administrator role administers itself and, by default, every other role.
type Registry struct {
	component string
	store     Store
	auditor   Emitter
	metrics   *Metrics
	logger    *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

func WithAudit(e Emitter) Option       { return func(r *Registry) { r.auditor = e } }
func WithMetrics(m *Metrics) Option    { return func(r *Registry) { r.metrics = m } }
func WithLogger(l *slog.Logger) Option { return func(r *Registry) { r.logger = l } }

// NewRegistry creates a role registry for one component ("ledger", "equity",
// "treasury"). The component name tags audit events so role changes on
// different tables stay distinguishable.
func NewRegistry(component string, store Store, opts ...Option) *Registry {
	r := &Registry{
		component: component,
		store:     store,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Grant gives holder the role. Idempotent: granting an already-held role is
// a silent no-op. The actor must hold the role's admin role.
func (r *Registry) Grant(ctx context.Context, role domain.RoleID, holder domain.Address) error {
	actor := requestcontext.Actor(ctx)
	if err := r.requireAdminOf(ctx, actor, role); err != nil {
		return err
	}

	changed, err := r.store.Grant(ctx, role, holder)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to grant role")
	}
	if !changed {
		return nil
	}

	r.observeChange(ctx, audit.EventRoleGranted, role, holder, actor)
	return nil
}

// Revoke removes the role from holder. Idempotent: revoking an unheld role
// is a silent no-op. The actor must hold the role's admin role.
func (r *Registry) Revoke(ctx context.Context, role domain.RoleID, holder domain.Address) error {
	actor := requestcontext.Actor(ctx)
	if err := r.requireAdminOf(ctx, actor, role); err != nil {
		return err
	}

	changed, err := r.store.Revoke(ctx, role, holder)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke role")
	}
	if !changed {
		return nil
	}

	r.observeChange(ctx, audit.EventRoleRevoked, role, holder, actor)
	return nil
}

// Has is a pure lookup.
func (r *Registry) Has(ctx context.Context, role domain.RoleID, holder domain.Address) (bool, error) {
	held, err := r.store.Has(ctx, role, holder)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check role")
	}
	return held, nil
}

// Require returns Unauthorized unless holder has the role. Services guard
// privileged operations with this.
func (r *Registry) Require(ctx context.Context, role domain.RoleID, holder domain.Address) error {
	held, err := r.Has(ctx, role, holder)
	if err != nil {
		return err
	}
	if !held {
		return dErrors.Newf(dErrors.CodeUnauthorized, "caller lacks the %s role", role.Name())
	}
	return nil
}

// AdminOf resolves the admin role for role.
func (r *Registry) AdminOf(ctx context.Context, role domain.RoleID) (domain.RoleID, error) {
	admin, err := r.store.AdminOf(ctx, role)
	if err != nil {
		return domain.RoleID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve admin role")
	}
	return admin, nil
}

// SetAdminRole redirects role's administration to admin. Restricted to
// administrators.
func (r *Registry) SetAdminRole(ctx context.Context, role, admin domain.RoleID) error {
	actor := requestcontext.Actor(ctx)
	if err := r.Require(ctx, domain.RoleAdministrator, actor); err != nil {
		return err
	}
	if err := r.store.SetAdmin(ctx, role, admin); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to set admin role")
	}
	return nil
}

// Seed installs initial grants without authorization checks. Bootstrap-time
// only: it runs before the component is reachable by any external caller.
func (r *Registry) Seed(ctx context.Context, grants map[domain.RoleID][]domain.Address) error {
	for role, holders := range grants {
		for _, holder := range holders {
			if _, err := r.store.Grant(ctx, role, holder); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed role")
			}
		}
	}
	return nil
}

// SeedAdmin redirects role's administration to admin without authorization
// checks. Bootstrap-time only, same caveat as Seed.
func (r *Registry) SeedAdmin(ctx context.Context, role, admin domain.RoleID) error {
	if err := r.store.SetAdmin(ctx, role, admin); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed admin role")
	}
	return nil
}

// Component names the role table this registry guards.
func (r *Registry) Component() string {
	return r.component
}

func (r *Registry) requireAdminOf(ctx context.Context, actor domain.Address, role domain.RoleID) error {
	admin, err := r.AdminOf(ctx, role)
	if err != nil {
		return err
	}
	held, err := r.Has(ctx, admin, actor)
	if err != nil {
		return err
	}
	if !held {
		return dErrors.Newf(dErrors.CodeUnauthorized, "caller lacks the %s role required to administer %s", admin.Name(), role.Name())
	}
	return nil
}

func (r *Registry) observeChange(ctx context.Context, kind audit.Kind, role domain.RoleID, holder, actor domain.Address) {
	if r.metrics != nil {
		r.metrics.IncrementRoleChange(r.component, kind == audit.EventRoleGranted)
	}
	if r.auditor == nil {
		return
	}
	if err := r.auditor.Emit(ctx, audit.Event{
		Kind:      kind,
		Component: r.component,
		Actor:     actor,
		Subject:   holder,
		Role:      role.Name(),
	}); err != nil {
		r.logger.ErrorContext(ctx, "failed to emit role audit event",
			"component", r.component,
			"role", role.Name(),
			"error", err,
		)
	}
}
