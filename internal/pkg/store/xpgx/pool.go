package xpgx

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ospanovk/hydromon/internal/pkg/logger"
)

// Querier is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx, so
// store methods run unchanged inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Pool struct {
	*pgxpool.Pool
}

// Connect opens the pool and pings it with bounded exponential backoff, so a
// restart does not race the database coming up.
func Connect(ctx context.Context, dsn string) (*Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 10), ctx)
	err = backoff.Retry(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if pingErr := pool.Ping(pingCtx); pingErr != nil {
			logger.Warnf(ctx, "db ping failed, retrying: %s", pingErr.Error())
			return pingErr
		}
		return nil
	}, policy)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &Pool{pool}, nil
}

// WithTx runs fn in a transaction, rolling back on any error.
func (p *Pool) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Execx executes a squirrel query.
func Execx(ctx context.Context, q Querier, sqlizer squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := sqlizer.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return q.Exec(ctx, sql, args...)
}

// Getx fetches exactly one row into a struct (db-tag matched).
func Getx[T any](ctx context.Context, q Querier, sqlizer squirrel.Sqlizer) (*T, error) {
	sql, args, err := sqlizer.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Selectx fetches all rows into structs (db-tag matched).
func Selectx[T any](ctx context.Context, q Querier, sqlizer squirrel.Sqlizer) ([]*T, error) {
	sql, args, err := sqlizer.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Scalarx fetches a single value (counts, averages).
func Scalarx[T any](ctx context.Context, q Querier, sqlizer squirrel.Sqlizer) (T, error) {
	var out T
	sql, args, err := sqlizer.ToSql()
	if err != nil {
		return out, err
	}
	err = q.QueryRow(ctx, sql, args...).Scan(&out)
	return out, err
}
