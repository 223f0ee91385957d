package querier

import (
	"context"
	"database/sql"

	trmsql "github.com/avito-tech/go-transaction-manager/sql"
)

type Querier struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
}

func New(db *sql.DB, getter *trmsql.CtxGetter) *Querier {
	return &Querier{
		db:     db,
		getter: getter,
	}
}

func (q *Querier) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	executor := q.get(ctx)
	return executor.ExecContext(ctx, query, args...)
}

func (q *Querier) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	executor := q.get(ctx)
	return executor.QueryContext(ctx, query, args...)
}

func (q *Querier) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	executor := q.get(ctx)
	return executor.QueryRowContext(ctx, query, args...)
}

func (q *Querier) get(ctx context.Context) trmsql.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.db)
}
