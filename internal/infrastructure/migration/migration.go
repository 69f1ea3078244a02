package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists the schema steps in the order they run. Every step is
// idempotent.
func Migrations() []Migration {
	return []Migration{
		{Name: "create_resume_documents", Up: exec(createResumeDocuments, false)},
		{Name: "add_revision_to_resume_documents", Up: exec(addRevision, true)},
		{Name: "index_resume_documents_updated_at", Up: exec(indexUpdatedAt, true)},
	}
}

const createResumeDocuments = `
	CREATE TABLE IF NOT EXISTS resume_documents (
		user_id UUID PRIMARY KEY,
		document JSONB NOT NULL,
		active_template TEXT NOT NULL DEFAULT 'minimalist',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// tables created before stale-write protection have no revision column
const addRevision = `
	ALTER TABLE resume_documents
	ADD COLUMN IF NOT EXISTS revision BIGINT NOT NULL DEFAULT 0;
`

const indexUpdatedAt = `
	CREATE INDEX IF NOT EXISTS resume_documents_updated_at_idx
	ON resume_documents (updated_at);
`

// exec runs query. Optional steps only log a warning on failure.
func exec(query string, optional bool) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		if _, err := pool.Exec(ctx, query); err != nil {
			if optional {
				slog.Warn("Optional migration step failed", "error", err)
				return nil
			}
			return err
		}
		return nil
	}
}
