package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillChecksums(db); err != nil {
		return fmt.Errorf("backfilling document checksums: %w", err)
	}
	return nil
}

var migrations = []string{
	// One JSON document per key: the whole planner state is written at once.
	`CREATE TABLE IF NOT EXISTS planner_state (
		key        TEXT PRIMARY KEY,
		document   TEXT NOT NULL,
		revision   INTEGER NOT NULL DEFAULT 0 CHECK(revision >= 0),
		updated_at TEXT NOT NULL
	)`,

	// Rolling history of previous documents so earlier revisions can be restored.
	`CREATE TABLE IF NOT EXISTS planner_state_history (
		key        TEXT NOT NULL,
		revision   INTEGER NOT NULL,
		document   TEXT NOT NULL,
		saved_at   TEXT NOT NULL,
		PRIMARY KEY (key, revision)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_state_history_saved ON planner_state_history(key, saved_at)`,

	// Add checksum to detect documents edited outside the app
	`ALTER TABLE planner_state ADD COLUMN checksum TEXT NOT NULL DEFAULT ''`,
}

// migrateBackfillChecksums fills the checksum of rows written before the
// column existed. Idempotent: rows with a checksum are skipped.
func migrateBackfillChecksums(db *sql.DB) error {
	ctx := context.Background()

	rows, err := db.QueryContext(ctx, `SELECT key, document FROM planner_state WHERE checksum = ''`)
	if err != nil {
		return fmt.Errorf("listing rows without checksum: %w", err)
	}
	type pending struct{ key, doc string }
	var todo []pending
	for rows.Next() {
		var p pending
		if err := rows.Scan(&p.key, &p.doc); err != nil {
			rows.Close()
			return fmt.Errorf("scanning planner_state row: %w", err)
		}
		todo = append(todo, p)
	}
	rows.Close()

	for _, p := range todo {
		if _, err := db.ExecContext(ctx,
			`UPDATE planner_state SET checksum = ? WHERE key = ? AND checksum = ''`, Checksum(p.doc), p.key); err != nil {
			return fmt.Errorf("updating checksum for %s: %w", p.key, err)
		}
	}
	return nil
}
