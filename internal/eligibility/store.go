package eligibility

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"syndicate/pkg/domain"
)

// Store holds the single current commitment root. There is no history:
// replacing the root invalidates every proof built against the prior value.
type Store interface {
	Current(ctx context.Context) (domain.Digest, error)
	Replace(ctx context.Context, root domain.Digest) error
}

// InMemory holds the commitment in memory.
type InMemory struct {
	mu   sync.RWMutex
	root domain.Digest
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Current(context.Context) (domain.Digest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root, nil
}

func (s *InMemory) Replace(_ context.Context, root domain.Digest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = root
	return nil
}

// PostgresStore persists the commitment in a single-row table.
//
// Schema:
//
//	CREATE TABLE eligibility_commitment (
//	    singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
//	    root      BYTEA NOT NULL
//	);
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Current(ctx context.Context) (domain.Digest, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT root FROM eligibility_commitment WHERE singleton`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Digest{}, nil
	}
	if err != nil {
		return domain.Digest{}, fmt.Errorf("read commitment: %w", err)
	}
	var root domain.Digest
	copy(root[:], raw)
	return root, nil
}

func (s *PostgresStore) Replace(ctx context.Context, root domain.Digest) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO eligibility_commitment (singleton, root) VALUES (TRUE, $1)
		 ON CONFLICT (singleton) DO UPDATE SET root = EXCLUDED.root`,
		root[:])
	if err != nil {
		return fmt.Errorf("replace commitment: %w", err)
	}
	return nil
}
