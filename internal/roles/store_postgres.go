package roles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"syndicate/pkg/domain"
)

// PostgresStore persists role assignments in PostgreSQL.
//
// Schema:
//
//	CREATE TABLE role_assignments (
//	    component TEXT NOT NULL,
//	    role      BYTEA NOT NULL,
//	    holder    BYTEA NOT NULL,
//	    PRIMARY KEY (component, role, holder)
//	);
//	CREATE TABLE role_admins (
//	    component  TEXT NOT NULL,
//	    role       BYTEA NOT NULL,
//	    admin_role BYTEA NOT NULL,
//	    PRIMARY KEY (component, role)
//	);
//
// component scopes assignments so the ledger, equity token, and treasury can
// share one database.
type PostgresStore struct {
	db        *sql.DB
	component string
}

// NewPostgres constructs a PostgreSQL-backed role store scoped to component.
func NewPostgres(db *sql.DB, component string) *PostgresStore {
	return &PostgresStore{db: db, component: component}
}

func (s *PostgresStore) Grant(ctx context.Context, role domain.RoleID, holder domain.Address) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO role_assignments (component, role, holder) VALUES ($1, $2, $3)
		 ON CONFLICT DO NOTHING`,
		s.component, role[:], holder[:])
	if err != nil {
		return false, fmt.Errorf("grant role: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("grant role: %w", err)
	}
	return n > 0, nil
}

func (s *PostgresStore) Revoke(ctx context.Context, role domain.RoleID, holder domain.Address) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM role_assignments WHERE component = $1 AND role = $2 AND holder = $3`,
		s.component, role[:], holder[:])
	if err != nil {
		return false, fmt.Errorf("revoke role: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("revoke role: %w", err)
	}
	return n > 0, nil
}

func (s *PostgresStore) Has(ctx context.Context, role domain.RoleID, holder domain.Address) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM role_assignments
		     WHERE component = $1 AND role = $2 AND holder = $3
		 )`,
		s.component, role[:], holder[:]).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) AdminOf(ctx context.Context, role domain.RoleID) (domain.RoleID, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT admin_role FROM role_admins WHERE component = $1 AND role = $2`,
		s.component, role[:]).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RoleAdministrator, nil
	}
	if err != nil {
		return domain.RoleID{}, fmt.Errorf("admin of role: %w", err)
	}
	var admin domain.RoleID
	copy(admin[:], raw)
	return admin, nil
}

func (s *PostgresStore) SetAdmin(ctx context.Context, role, admin domain.RoleID) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO role_admins (component, role, admin_role) VALUES ($1, $2, $3)
		 ON CONFLICT (component, role) DO UPDATE SET admin_role = EXCLUDED.admin_role`,
		s.component, role[:], admin[:])
	if err != nil {
		return fmt.Errorf("set role admin: %w", err)
	}
	return nil
}
