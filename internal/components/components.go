// Package components holds the registry's subordinate components: the
// treasury, the two governance bodies, and the fungible equity token.
//
// Their internals (fund custody, proposal mechanics, supply economics) are
// out of the registry's scope; the registry only depends on the narrow
// surfaces below, and the governance handoff drives all three through the
// shared role surface.
package components

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"

	"syndicate/pkg/domain"
)

//go:generate mockgen -source=components.go -destination=mocks/mocks.go -package=mocks

// RoleSurface is the RoleRegistry-shaped surface every component exposes.
// Role identifiers are the same stable digests used by the ledger, so they
// compare across components without a shared registry.
type RoleSurface interface {
	GrantRole(ctx context.Context, role domain.RoleID, holder domain.Address) error
	RevokeRole(ctx context.Context, role domain.RoleID, holder domain.Address) error
	HasRole(ctx context.Context, role domain.RoleID, holder domain.Address) (bool, error)
}

// Treasury custodies funds and, after handoff, administers the registry.
type Treasury interface {
	RoleSurface
	// UpdateShareSplit applies the initial split policy to treasury-held
	// equity. Restricted to timelock administrators.
	UpdateShareSplit(ctx context.Context, splitBPS uint32) error
	Address() domain.Address
}

// EquityToken is the fungible share token surface the registry consumes.
type EquityToken interface {
	RoleSurface
	Mint(ctx context.Context, to domain.Address, amount uint64) error
	BalanceOf(ctx context.Context, holder domain.Address) (uint64, error)
	Address() domain.Address
	Name() string
	Symbol() string
}

// Governor exists, from the registry's perspective, as an address that
// receives proposer rights on the treasury.
type Governor interface {
	Address() domain.Address
	Name() string
}

// GovernorSettings parameterizes a governance body at construction.
type GovernorSettings struct {
	VotingDelay  time.Duration
	VotingPeriod time.Duration
	QuorumBPS    uint32
}

// ComponentSet is the wired set produced by bootstrap. Treasury, the
// membership governor, and the share token are immutable after
// construction; the share governor slot is mutable to leave room for a
// governance-approved replacement.
type ComponentSet struct {
	Treasury           Treasury
	MembershipGovernor Governor
	ShareToken         EquityToken

	mu            sync.RWMutex
	shareGovernor Governor
}

// ShareGovernor returns the currently active share governor.
func (c *ComponentSet) ShareGovernor() Governor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shareGovernor
}

// ReplaceShareGovernor swaps the active share governor. The upgrade path
// itself (a passed proposal executed by the treasury) is outside the
// registry; callers are trusted to have cleared it.
func (c *ComponentSet) ReplaceShareGovernor(g Governor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shareGovernor = g
}

// DeriveAddress derives the stable pseudo-address for a named in-process
// component. Exposed so bootstrap can reference the ledger the same way the
// components reference each other.
func DeriveAddress(name string) domain.Address {
	return componentAddress(name)
}

// componentAddress derives a stable pseudo-address for an in-process
// component from its name, so audit trails and role grants reference
// components the same way across restarts.
func componentAddress(name string) domain.Address {
	sum := sha3.Sum256([]byte("syndicate.component." + name))
	var a domain.Address
	copy(a[:], sum[:20])
	return a
}
