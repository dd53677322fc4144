package roles

import (
	"context"
	"sync"

	"syndicate/pkg/domain"
)

// InMemory is a mutex-guarded role table for tests and single-node use.
type InMemory struct {
	mu      sync.RWMutex
	holders map[domain.RoleID]map[domain.Address]struct{}
	admins  map[domain.RoleID]domain.RoleID
}

func NewInMemory() *InMemory {
	return &InMemory{
		holders: make(map[domain.RoleID]map[domain.Address]struct{}),
		admins:  make(map[domain.RoleID]domain.RoleID),
	}
}

func (s *InMemory) Grant(_ context.Context, role domain.RoleID, holder domain.Address) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.holders[role]
	if !ok {
		set = make(map[domain.Address]struct{})
		s.holders[role] = set
	}
	if _, held := set[holder]; held {
		return false, nil
	}
	set[holder] = struct{}{}
	return true, nil
}

func (s *InMemory) Revoke(_ context.Context, role domain.RoleID, holder domain.Address) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.holders[role]
	if !ok {
		return false, nil
	}
	if _, held := set[holder]; !held {
		return false, nil
	}
	delete(set, holder)
	return true, nil
}

func (s *InMemory) Has(_ context.Context, role domain.RoleID, holder domain.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, held := s.holders[role][holder]
	return held, nil
}

func (s *InMemory) AdminOf(_ context.Context, role domain.RoleID) (domain.RoleID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if admin, ok := s.admins[role]; ok {
		return admin, nil
	}
	return domain.RoleAdministrator, nil
}

func (s *InMemory) SetAdmin(_ context.Context, role, admin domain.RoleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[role] = admin
	return nil
}
