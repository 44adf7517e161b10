package postgres

import (
	"context"
	"fmt"
)

// ChangesChannel is the NOTIFY channel fired after every write to problems.
const ChangesChannel = "problems_changed"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS problems (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    link        TEXT NOT NULL DEFAULT '',
    difficulty  TEXT NOT NULL CHECK (difficulty IN ('Easy', 'Medium', 'Hard')),
    tags        TEXT[] NOT NULL DEFAULT '{}',
    solved_by   TEXT NOT NULL,
    notes       TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL,
    comments    JSONB NOT NULL DEFAULT '[]'::jsonb
)`,
	`CREATE INDEX IF NOT EXISTS problems_created_at_idx ON problems (created_at DESC)`,
	`CREATE OR REPLACE FUNCTION notify_problems_changed() RETURNS trigger AS $$
BEGIN
    PERFORM pg_notify('` + ChangesChannel + `', TG_OP);
    RETURN NULL;
END;
$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS problems_changed ON problems`,
	`CREATE TRIGGER problems_changed
    AFTER INSERT OR UPDATE OR DELETE ON problems
    FOR EACH STATEMENT EXECUTE FUNCTION notify_problems_changed()`,
}

// EnsureSchema creates the problems table and its change trigger. It is safe
// to run on every start.
func EnsureSchema(ctx context.Context, db DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
