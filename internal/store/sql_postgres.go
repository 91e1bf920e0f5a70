package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the PostgreSQL connection pool shared by all repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a pool through the pgx stdlib driver and fails
// unless the database answers a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening postgres pool: %w", err)
	}
	limitPool(conn, cfg.MaxOpenConns)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Msg("postgres is unreachable")
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	stats := conn.Stats()
	log.Info().Int("max_open_conns", stats.MaxOpenConnections).Msg("connected to postgres")

	return newDB(conn, log), nil
}

// limitPool caps open and idle connections. Zero leaves the driver defaults.
func limitPool(conn *sql.DB, maxOpen int) {
	if maxOpen <= 0 {
		return
	}
	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(maxOpen)
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Migrate applies the embedded schema migrations and logs what changed.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		db.logger.Info().Msg("database schema is up to date")
		return nil
	}
	db.logger.Info().Ints64("versions", applied).Msg("applied database migrations")
	return nil
}

// retryable reports whether err is a transient PostgreSQL failure.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
