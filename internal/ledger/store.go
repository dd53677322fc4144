package ledger

import (
	"context"
	"time"

	"syndicate/pkg/domain"
)

// Store persists identities and the id counter. The counter never decreases
// and never reassigns a burned id; Mint must allocate atomically.
//
// Stores return sentinel errors; the service translates them into coded
// domain errors.
type Store interface {
	// Mint creates an identity at the next counter value and increments the
	// counter in the same atomic step.
	Mint(ctx context.Context, holder domain.Address, mintedAt time.Time) (Identity, error)

	Get(ctx context.Context, id domain.IdentityID) (Identity, error)
	Delete(ctx context.Context, id domain.IdentityID) error
	SetHolder(ctx context.Context, id domain.IdentityID, to domain.Address) error
	SetInvestor(ctx context.Context, id domain.IdentityID) error
	SetMetadataPointer(ctx context.Context, id domain.IdentityID, pointer string) error

	BalanceOf(ctx context.Context, holder domain.Address) (int, error)
	// FirstHeld returns the lowest-numbered identity held by holder, or
	// ErrNotFound if the balance is zero.
	FirstHeld(ctx context.Context, holder domain.Address) (Identity, error)
}
