package components

import (
	"context"
	"sync"

	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/requestcontext"
)

// Equity is the in-process fungible share token. Balances live in memory;
// supply economics beyond mint tracking are out of scope here.
type Equity struct {
	name   string
	symbol string
	addr   domain.Address
	roles  *roles.Registry

	mu       sync.RWMutex
	balances map[domain.Address]uint64
	supply   uint64
}

func NewEquity(name, symbol string, reg *roles.Registry) *Equity {
	return &Equity{
		name:     name,
		symbol:   symbol,
		addr:     componentAddress("equity." + symbol),
		roles:    reg,
		balances: make(map[domain.Address]uint64),
	}
}

// Mint issues amount new shares to the recipient. Restricted to the minter
// role on the token's own role table.
func (e *Equity) Mint(ctx context.Context, to domain.Address, amount uint64) error {
	actor := requestcontext.Actor(ctx)
	if err := e.roles.Require(ctx, domain.RoleMinter, actor); err != nil {
		return err
	}
	if to.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "cannot mint shares to the zero address")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.balances[to] += amount
	e.supply += amount
	return nil
}

func (e *Equity) BalanceOf(_ context.Context, holder domain.Address) (uint64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.balances[holder], nil
}

// TotalSupply reports all shares ever minted.
func (e *Equity) TotalSupply() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.supply
}

func (e *Equity) Name() string            { return e.name }
func (e *Equity) Symbol() string          { return e.symbol }
func (e *Equity) Address() domain.Address { return e.addr }

func (e *Equity) GrantRole(ctx context.Context, role domain.RoleID, holder domain.Address) error {
	return e.roles.Grant(ctx, role, holder)
}

func (e *Equity) RevokeRole(ctx context.Context, role domain.RoleID, holder domain.Address) error {
	return e.roles.Revoke(ctx, role, holder)
}

func (e *Equity) HasRole(ctx context.Context, role domain.RoleID, holder domain.Address) (bool, error) {
	return e.roles.Has(ctx, role, holder)
}
