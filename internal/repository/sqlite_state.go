package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/neurosprint/internal/db"
)

// SQLiteStateRepo implements StateRepo using a SQLite database.
type SQLiteStateRepo struct {
	db  db.DBTX
	now func() time.Time
}

// NewSQLiteStateRepo creates a new SQLiteStateRepo.
func NewSQLiteStateRepo(conn db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: conn, now: time.Now}
}

func (r *SQLiteStateRepo) Load(ctx context.Context, key string) (*StateRecord, error) {
	query := `SELECT key, document, revision, checksum, updated_at
		FROM planner_state WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	var (
		rec       StateRecord
		doc       string
		updatedAt string
	)
	if err := row.Scan(&rec.Key, &doc, &rec.Revision, &rec.Checksum, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("planner state %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning planner state: %w", err)
	}
	rec.Document = []byte(doc)
	rec.UpdatedAt = parseTime(updatedAt)
	return &rec, nil
}

func (r *SQLiteStateRepo) Save(ctx context.Context, key string, document []byte) (int64, error) {
	now := formatTime(r.now())

	archive := `INSERT OR REPLACE INTO planner_state_history (key, revision, document, saved_at)
		SELECT key, revision, document, updated_at FROM planner_state WHERE key = ?`
	if _, err := r.db.ExecContext(ctx, archive, key); err != nil {
		return 0, fmt.Errorf("archiving planner state: %w", err)
	}

	upsert := `INSERT INTO planner_state (key, document, revision, checksum, updated_at)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			document = excluded.document,
			revision = planner_state.revision + 1,
			checksum = excluded.checksum,
			updated_at = excluded.updated_at`
	doc := string(document)
	if _, err := r.db.ExecContext(ctx, upsert, key, doc, db.Checksum(doc), now); err != nil {
		return 0, fmt.Errorf("upserting planner state: %w", err)
	}

	var revision int64
	if err := r.db.QueryRowContext(ctx, `SELECT revision FROM planner_state WHERE key = ?`, key).Scan(&revision); err != nil {
		return 0, fmt.Errorf("reading planner state revision: %w", err)
	}
	return revision, nil
}

func (r *SQLiteStateRepo) ListHistory(ctx context.Context, key string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	query := `SELECT key, revision, document, saved_at FROM planner_state_history
		WHERE key = ? ORDER BY revision DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, key, limit)
	if err != nil {
		return nil, fmt.Errorf("listing planner state history: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		e, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *SQLiteStateRepo) GetHistory(ctx context.Context, key string, revision int64) (*HistoryEntry, error) {
	query := `SELECT key, revision, document, saved_at FROM planner_state_history
		WHERE key = ? AND revision = ?`
	e, err := scanHistory(r.db.QueryRowContext(ctx, query, key, revision))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("planner state %q revision %d: %w", key, revision, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteStateRepo) PruneHistory(ctx context.Context, key string, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	query := `DELETE FROM planner_state_history WHERE key = ? AND revision NOT IN (
		SELECT revision FROM planner_state_history WHERE key = ? ORDER BY revision DESC LIMIT ?)`
	res, err := r.db.ExecContext(ctx, query, key, key, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning planner state history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking pruned rows: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHistory(s scanner) (*HistoryEntry, error) {
	var (
		e       HistoryEntry
		doc     string
		savedAt string
	)
	if err := s.Scan(&e.Key, &e.Revision, &doc, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning planner state history: %w", err)
	}
	e.Document = []byte(doc)
	e.SavedAt = parseTime(savedAt)
	return &e, nil
}
