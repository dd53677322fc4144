package components

import (
	"context"
	"sync"
	"time"

	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/requestcontext"
)

// InvestmentSettings carries the investment terms the treasury is
// constructed with. Opaque to the registry.
type InvestmentSettings struct {
	MinContribution uint64
	MaxContribution uint64
	Open            bool
}

// Timelock is the in-process treasury. Queued execution of proposals is out
// of the registry's scope; what matters here is the role table the handoff
// drives and the share split applied to treasury-held equity.
type Timelock struct {
	addr       domain.Address
	delay      time.Duration
	ledgerRef  domain.Address
	equity     *Equity
	investment InvestmentSettings
	roles      *roles.Registry

	mu       sync.RWMutex
	splitBPS uint32
}

func NewTimelock(delay time.Duration, ledgerRef domain.Address, equity *Equity, settings InvestmentSettings, reg *roles.Registry) *Timelock {
	return &Timelock{
		addr:       componentAddress("treasury"),
		delay:      delay,
		ledgerRef:  ledgerRef,
		equity:     equity,
		investment: settings,
		roles:      reg,
	}
}

// UpdateShareSplit applies a new split policy, in basis points, to
// treasury-held equity. Restricted to timelock administrators.
func (t *Timelock) UpdateShareSplit(ctx context.Context, splitBPS uint32) error {
	actor := requestcontext.Actor(ctx)
	if err := t.roles.Require(ctx, domain.RoleTimelockAdmin, actor); err != nil {
		return err
	}
	if splitBPS > 10_000 {
		return dErrors.New(dErrors.CodeInvalidInput, "share split exceeds 100%")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.splitBPS = splitBPS
	return nil
}

// ShareSplit reports the active split in basis points.
func (t *Timelock) ShareSplit() uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.splitBPS
}

func (t *Timelock) Delay() time.Duration           { return t.delay }
func (t *Timelock) Investment() InvestmentSettings { return t.investment }
func (t *Timelock) Address() domain.Address        { return t.addr }

func (t *Timelock) GrantRole(ctx context.Context, role domain.RoleID, holder domain.Address) error {
	return t.roles.Grant(ctx, role, holder)
}

func (t *Timelock) RevokeRole(ctx context.Context, role domain.RoleID, holder domain.Address) error {
	return t.roles.Revoke(ctx, role, holder)
}

func (t *Timelock) HasRole(ctx context.Context, role domain.RoleID, holder domain.Address) (bool, error) {
	return t.roles.Has(ctx, role, holder)
}
