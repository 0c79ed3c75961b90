// Package xpgx wraps a pgx pool with squirrel-aware query helpers. Getx and
// Selectx scan rows into db-tagged structs; Execx runs a built statement and
// returns its command tag; InTx runs a function inside one transaction.
package xpgx

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Queryer interface {
	Getx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error
	Selectx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error
	Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error)
}

type Pool interface {
	Queryer
	InTx(ctx context.Context, fn func(q Queryer) error) error
	Close()
}

// querier is the part of pgxpool.Pool and pgx.Tx the helpers need.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type db struct {
	pool *pgxpool.Pool
}

type txQueryer struct {
	tx pgx.Tx
}

// Dial opens a pool and pings it, retrying briefly so the server surviving a
// database restart does not matter for startup ordering.
func Dial(ctx context.Context, dsn string) (Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 10),
			ctx,
		),
	)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &db{pool: pool}, nil
}

func (d *db) Getx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error {
	return getx(ctx, d.pool, dest, query)
}

func (d *db) Selectx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error {
	return selectx(ctx, d.pool, dest, query)
}

func (d *db) Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	return execx(ctx, d.pool, query)
}

func (d *db) InTx(ctx context.Context, fn func(q Queryer) error) error {
	return pgx.BeginFunc(ctx, d.pool, func(tx pgx.Tx) error {
		return fn(&txQueryer{tx: tx})
	})
}

func (d *db) Close() {
	d.pool.Close()
}

func (t *txQueryer) Getx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error {
	return getx(ctx, t.tx, dest, query)
}

func (t *txQueryer) Selectx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error {
	return selectx(ctx, t.tx, dest, query)
}

func (t *txQueryer) Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	return execx(ctx, t.tx, query)
}

func execx(ctx context.Context, q querier, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return q.Exec(ctx, sql, args...)
}

func getx(ctx context.Context, q querier, dest interface{}, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return pgx.ErrNoRows
	}
	if err := scanRow(rows, dest); err != nil {
		return err
	}
	rows.Close()
	return rows.Err()
}

func selectx(ctx context.Context, q querier, dest interface{}, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if err := scanAll(rows, dest); err != nil {
		return err
	}
	return rows.Err()
}
