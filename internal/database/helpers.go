package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// withTx executes a function within a database transaction.
// It commits when fn returns nil and rolls back otherwise, including when fn
// reports ErrNotFound. Failing to begin is reported as ErrConnection.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", ErrConnection, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			log.Error().Err(err).Msg("failed to rollback transaction")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execAffecting runs a keyed update or delete and maps zero affected rows to ErrNotFound
func execAffecting(ctx context.Context, ex execer, query string, args ...any) error {
	result, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// wrapKeyed adds the operation and ID to err. ErrNotFound and
// ErrConnection pass through unchanged so callers can print them as-is.
func wrapKeyed(op string, id int, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConnection) {
		return err
	}
	return fmt.Errorf("failed to %s %d: %w", op, id, err)
}
