// Package roles implements the authorization table: a many-role-to-many-holder
// relation with a directed admin-of relation over role identifiers.
//
// The registry is generic: the identity ledger, the equity token, and the
// treasury each own an instance, so role checks behave identically across
// components while their assignments stay separate.
package roles

import (
	"context"

	"syndicate/pkg/domain"
)

// Store persists role assignments and the admin-of relation.
//
// Grant and Revoke report whether the call changed anything so the service
// can keep idempotent no-ops silent in the audit stream.
type Store interface {
	Grant(ctx context.Context, role domain.RoleID, holder domain.Address) (changed bool, err error)
	Revoke(ctx context.Context, role domain.RoleID, holder domain.Address) (changed bool, err error)
	Has(ctx context.Context, role domain.RoleID, holder domain.Address) (bool, error)

	// AdminOf returns the role that administers role. Roles with no explicit
	// entry are administered by the administrator role.
	AdminOf(ctx context.Context, role domain.RoleID) (domain.RoleID, error)
	SetAdmin(ctx context.Context, role, admin domain.RoleID) error
}
