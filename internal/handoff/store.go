package handoff

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"syndicate/pkg/platform/sentinel"
)

// Store persists the one-shot finalized flag. MarkFinalized is the arbiter
// when two processes race finalize: the loser gets sentinel.ErrConflict.
type Store interface {
	Finalized(ctx context.Context) (bool, error)
	MarkFinalized(ctx context.Context) error
}

// InMemory keeps the flag in process memory.
type InMemory struct {
	mu        sync.RWMutex
	finalized bool
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Finalized(context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finalized, nil
}

func (s *InMemory) MarkFinalized(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalized {
		return sentinel.ErrConflict
	}
	s.finalized = true
	return nil
}

// PostgresStore keeps the flag in a single-row table.
//
// Schema:
//
//	CREATE TABLE governance_handoff (
//	    singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
//	    finalized BOOLEAN NOT NULL,
//	    finalized_at TIMESTAMPTZ
//	);
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Finalized(ctx context.Context) (bool, error) {
	var finalized bool
	err := s.db.QueryRowContext(ctx, `SELECT finalized FROM governance_handoff WHERE singleton`).Scan(&finalized)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return finalized, nil
}

func (s *PostgresStore) MarkFinalized(ctx context.Context) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO governance_handoff (singleton, finalized, finalized_at)
		VALUES (TRUE, TRUE, NOW())
		ON CONFLICT (singleton) DO UPDATE SET finalized = TRUE, finalized_at = NOW()
		WHERE governance_handoff.finalized = FALSE`)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sentinel.ErrConflict
	}
	return nil
}
