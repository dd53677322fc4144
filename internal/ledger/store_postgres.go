package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"syndicate/pkg/domain"
	"syndicate/pkg/platform/sentinel"
)

// PostgresStore persists identities in PostgreSQL.
//
// Schema:
//
//	CREATE TABLE identities (
//	    id               BIGINT PRIMARY KEY,
//	    holder           BYTEA NOT NULL,
//	    investor         BOOLEAN NOT NULL DEFAULT FALSE,
//	    metadata_pointer TEXT NOT NULL DEFAULT '',
//	    minted_at        TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX identities_holder_idx ON identities (holder, id);
//	CREATE TABLE identity_counter (
//	    singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
//	    next_id   BIGINT NOT NULL
//	);
//
// The counter row is incremented in the same transaction that inserts the
// identity, so ids stay strictly increasing even under concurrent mints and
// a burned id's number is never handed out again.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Mint(ctx context.Context, holder domain.Address, mintedAt time.Time) (Identity, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("begin mint: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO identity_counter (singleton, next_id) VALUES (TRUE, 1)
		 ON CONFLICT (singleton) DO UPDATE SET next_id = identity_counter.next_id + 1
		 RETURNING next_id - 1`).Scan(&id)
	if err != nil {
		return Identity{}, fmt.Errorf("allocate identity id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO identities (id, holder, minted_at) VALUES ($1, $2, $3)`,
		id, holder[:], mintedAt)
	if err != nil {
		return Identity{}, fmt.Errorf("insert identity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Identity{}, fmt.Errorf("commit mint: %w", err)
	}
	return Identity{ID: domain.IdentityID(id), Holder: holder, MintedAt: mintedAt}, nil
}

func (s *PostgresStore) Get(ctx context.Context, id domain.IdentityID) (Identity, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, holder, investor, metadata_pointer, minted_at FROM identities WHERE id = $1`,
		int64(id))
	return scanIdentity(row)
}

func (s *PostgresStore) Delete(ctx context.Context, id domain.IdentityID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM identities WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SetHolder(ctx context.Context, id domain.IdentityID, to domain.Address) error {
	return s.exec(ctx, `UPDATE identities SET holder = $2 WHERE id = $1`, int64(id), to[:])
}

func (s *PostgresStore) SetInvestor(ctx context.Context, id domain.IdentityID) error {
	return s.exec(ctx, `UPDATE identities SET investor = TRUE WHERE id = $1`, int64(id))
}

func (s *PostgresStore) SetMetadataPointer(ctx context.Context, id domain.IdentityID, pointer string) error {
	return s.exec(ctx, `UPDATE identities SET metadata_pointer = $2 WHERE id = $1`, int64(id), pointer)
}

func (s *PostgresStore) BalanceOf(ctx context.Context, holder domain.Address) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM identities WHERE holder = $1`, holder[:]).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("balance of holder: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) FirstHeld(ctx context.Context, holder domain.Address) (Identity, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, holder, investor, metadata_pointer, minted_at FROM identities
		 WHERE holder = $1 ORDER BY id ASC LIMIT 1`, holder[:])
	return scanIdentity(row)
}

func (s *PostgresStore) exec(ctx context.Context, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update identity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update identity: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func scanIdentity(row *sql.Row) (Identity, error) {
	var (
		id       int64
		holder   []byte
		identity Identity
	)
	err := row.Scan(&id, &holder, &identity.Investor, &identity.MetadataPointer, &identity.MintedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Identity{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Identity{}, fmt.Errorf("scan identity: %w", err)
	}
	identity.ID = domain.IdentityID(id)
	copy(identity.Holder[:], holder)
	return identity, nil
}
