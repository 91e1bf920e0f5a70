package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
)

// count returns the number of rows in table.
func (db *DB) count(ctx context.Context, table string) (int, error) {
	query, args, err := buildCountQuery(table)
	if err != nil {
		return 0, err
	}
	return db.countQuery(ctx, query, args)
}

func (db *DB) countQuery(ctx context.Context, query string, args []any) (int, error) {
	var total int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*DB.countQuery").Bool("retryable", db.retryable(err)).Msg("error counting rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return total, nil
}

// delete removes the row with id from table and returns notFound when no row
// was affected. A foreign key violation is wrapped in inUse when it is set.
func (db *DB) delete(ctx context.Context, table string, id int64, notFound, inUse error) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(table, id)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*DB.delete").Str("table", table).Int64("id", id).Bool("retryable", db.retryable(err)).Msg("error deleting row")
		if inUse != nil && isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %w", inUse, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
