package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"theatre/ticketing/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	ErrConflictCode   = "23505"
	ErrForeignKeyCode = "23503"
	ErrOutOfRangeCode = "22003"
	ErrTooLongCode    = "22001"
)

//go:embed schema/schema.sql
var schema string

type PostgresDB struct {
	Conn *pgxpool.Pool
}

func New(ctx context.Context, dsn string, maxConns int, maxConnIdleTime time.Duration) (*PostgresDB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = int32(maxConns)
	cfg.MaxConnIdleTime = maxConnIdleTime
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresDB{Conn: pool}, nil
}

// EnsureSchema creates every table that does not exist yet. Safe to call on each start.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// ConvertErr translates driver errors into storage errors.
// onDelete switches the meaning of a foreign key violation: on insert/update the
// referenced row is missing, on delete the row is still referenced.
func ConvertErr(err error, onDelete bool) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case ErrConflictCode:
			return fmt.Errorf("%w: %s", storage.ErrConflict, pgErr.ConstraintName)
		case ErrForeignKeyCode:
			if onDelete {
				return fmt.Errorf("%w: %s", storage.ErrReferenced, pgErr.ConstraintName)
			}
			return fmt.Errorf("%w: %s", storage.ErrInvalidReference, pgErr.ConstraintName)
		case ErrOutOfRangeCode, ErrTooLongCode:
			return fmt.Errorf("%w: %s", storage.ErrInvalidValue, pgErr.Message)
		}
	}
	return err
}
