package testutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/neurosprint/internal/db"
)

// ExecFaultUoW runs each unit of work in a real transaction and makes the
// FailAt-th write fail with Err. A planner save writes twice: the history
// archive first, then the upsert of the current document. Reads are not
// counted. Executed records the statements that reached the database.
type ExecFaultUoW struct {
	DB     *sql.DB
	FailAt int
	Err    error

	Executed []string
}

func (u *ExecFaultUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin planner transaction: %w", err)
	}
	if err := fn(ctx, &faultyTx{DBTX: tx, uow: u}); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	return tx.Commit()
}

type faultyTx struct {
	db.DBTX
	uow    *ExecFaultUoW
	writes int
}

func (f *faultyTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.writes++
	if f.writes == f.uow.FailAt {
		return nil, f.uow.Err
	}
	f.uow.Executed = append(f.uow.Executed, query)
	return f.DBTX.ExecContext(ctx, query, args...)
}
