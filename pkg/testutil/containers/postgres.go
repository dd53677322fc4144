//go:build integration

package containers

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// schema mirrors the DDL documented on each Postgres store.
const schema = `
CREATE TABLE IF NOT EXISTS role_assignments (
    component TEXT NOT NULL,
    role      BYTEA NOT NULL,
    holder    BYTEA NOT NULL,
    PRIMARY KEY (component, role, holder)
);
CREATE TABLE IF NOT EXISTS role_admins (
    component  TEXT NOT NULL,
    role       BYTEA NOT NULL,
    admin_role BYTEA NOT NULL,
    PRIMARY KEY (component, role)
);
CREATE TABLE IF NOT EXISTS identities (
    id               BIGINT PRIMARY KEY,
    holder           BYTEA NOT NULL,
    investor         BOOLEAN NOT NULL DEFAULT FALSE,
    metadata_pointer TEXT NOT NULL DEFAULT '',
    minted_at        TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS identities_holder_idx ON identities (holder, id);
CREATE TABLE IF NOT EXISTS identity_counter (
    singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
    next_id   BIGINT NOT NULL
);
CREATE TABLE IF NOT EXISTS eligibility_commitment (
    singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
    root      BYTEA NOT NULL
);
CREATE TABLE IF NOT EXISTS transfer_guard (
    singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
    paused    BOOLEAN NOT NULL
);
CREATE TABLE IF NOT EXISTS governance_handoff (
    singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
    finalized BOOLEAN NOT NULL,
    finalized_at TIMESTAMPTZ
);
`

// PostgresContainer wraps a testcontainers Postgres instance with the
// registry schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	URL       string
	DB        *sql.DB
}

// NewPostgresContainer starts a Postgres container and applies the schema.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("syndicate_test"),
		tcpostgres.WithUsername("syndicate"),
		tcpostgres.WithPassword("syndicate"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres: %v", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{Container: container, URL: url, DB: db}
}

// Truncate empties every registry table. Use between tests for isolation.
func (p *PostgresContainer) Truncate(ctx context.Context) error {
	_, err := p.DB.ExecContext(ctx, `
		TRUNCATE role_assignments, role_admins, identities, identity_counter,
		         eligibility_commitment, transfer_guard, governance_handoff`)
	return err
}
