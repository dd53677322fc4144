// Package guard implements the pausable gate consulted on every identity
// transfer. Two states, Active and Paused; minting is exempt.
package guard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// Store persists the paused flag.
type Store interface {
	Paused(ctx context.Context) (bool, error)
	SetPaused(ctx context.Context, paused bool) error
}

// InMemory holds the flag in memory. Initial state is Active.
type InMemory struct {
	mu     sync.RWMutex
	paused bool
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Paused(context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused, nil
}

func (s *InMemory) SetPaused(_ context.Context, paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = paused
	return nil
}

// PostgresStore persists the flag in a single-row table.
//
// Schema:
//
//	CREATE TABLE transfer_guard (
//	    singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
//	    paused    BOOLEAN NOT NULL
//	);
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Paused(ctx context.Context) (bool, error) {
	var paused bool
	err := s.db.QueryRowContext(ctx, `SELECT paused FROM transfer_guard WHERE singleton`).Scan(&paused)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read paused flag: %w", err)
	}
	return paused, nil
}

func (s *PostgresStore) SetPaused(ctx context.Context, paused bool) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transfer_guard (singleton, paused) VALUES (TRUE, $1)
		 ON CONFLICT (singleton) DO UPDATE SET paused = EXCLUDED.paused`,
		paused)
	if err != nil {
		return fmt.Errorf("write paused flag: %w", err)
	}
	return nil
}
