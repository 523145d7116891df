package repository

import (
	"context"
	"time"
)

// StateRecord is one stored planner document.
type StateRecord struct {
	Key       string
	Document  []byte
	Revision  int64
	Checksum  string
	UpdatedAt time.Time
}

// HistoryEntry is a previous revision of a stored document.
type HistoryEntry struct {
	Key      string
	Revision int64
	Document []byte
	SavedAt  time.Time
}

// StateRepo is the local key-value persistence for planner documents.
type StateRepo interface {
	Load(ctx context.Context, key string) (*StateRecord, error)
	// Save upserts the document and returns the new revision. The previous
	// document, if any, is copied to history first.
	Save(ctx context.Context, key string, document []byte) (int64, error)
	ListHistory(ctx context.Context, key string, limit int) ([]HistoryEntry, error)
	GetHistory(ctx context.Context, key string, revision int64) (*HistoryEntry, error)
	PruneHistory(ctx context.Context, key string, keep int) (int64, error)
}
