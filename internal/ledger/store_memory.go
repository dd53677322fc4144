package ledger

import (
	"context"
	"sync"
	"time"

	"syndicate/pkg/domain"
	"syndicate/pkg/platform/sentinel"
)

// InMemory is a mutex-guarded ledger for tests and single-node use.
type InMemory struct {
	mu         sync.RWMutex
	identities map[domain.IdentityID]Identity
	next       domain.IdentityID
}

func NewInMemory() *InMemory {
	return &InMemory{identities: make(map[domain.IdentityID]Identity)}
}

func (s *InMemory) Mint(_ context.Context, holder domain.Address, mintedAt time.Time) (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	identity := Identity{
		ID:       s.next,
		Holder:   holder,
		MintedAt: mintedAt,
	}
	s.identities[identity.ID] = identity
	s.next++
	return identity, nil
}

func (s *InMemory) Get(_ context.Context, id domain.IdentityID) (Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.identities[id]
	if !ok {
		return Identity{}, sentinel.ErrNotFound
	}
	return identity, nil
}

func (s *InMemory) Delete(_ context.Context, id domain.IdentityID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.identities[id]; !ok {
		return sentinel.ErrNotFound
	}
	// The counter is untouched: burned ids are never reassigned.
	delete(s.identities, id)
	return nil
}

func (s *InMemory) SetHolder(_ context.Context, id domain.IdentityID, to domain.Address) error {
	return s.update(id, func(identity *Identity) { identity.Holder = to })
}

func (s *InMemory) SetInvestor(_ context.Context, id domain.IdentityID) error {
	return s.update(id, func(identity *Identity) { identity.Investor = true })
}

func (s *InMemory) SetMetadataPointer(_ context.Context, id domain.IdentityID, pointer string) error {
	return s.update(id, func(identity *Identity) { identity.MetadataPointer = pointer })
}

func (s *InMemory) BalanceOf(_ context.Context, holder domain.Address) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, identity := range s.identities {
		if identity.Holder == holder {
			count++
		}
	}
	return count, nil
}

func (s *InMemory) FirstHeld(_ context.Context, holder domain.Address) (Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var (
		first Identity
		found bool
	)
	for _, identity := range s.identities {
		if identity.Holder != holder {
			continue
		}
		if !found || identity.ID < first.ID {
			first = identity
			found = true
		}
	}
	if !found {
		return Identity{}, sentinel.ErrNotFound
	}
	return first, nil
}

func (s *InMemory) update(id domain.IdentityID, mutate func(*Identity)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	identity, ok := s.identities[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	mutate(&identity)
	s.identities[id] = identity
	return nil
}
