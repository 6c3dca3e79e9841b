package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

// Compile-time check: Transactor implements domain.Transactor.
var _ domain.Transactor = (*Transactor)(nil)

type txKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFrom(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// Transactor runs functions inside a SQLite transaction carried in the context.
type Transactor struct {
	db *sql.DB
}

// RunInTx begins a transaction, runs fn with it bound to ctx, and commits if
// fn returns nil. Any error rolls back. A call made while a transaction is
// already bound to ctx joins it instead of starting a new one.
func (t *Transactor) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
