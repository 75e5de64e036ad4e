package pdowrap

import (
	"context"
	"database/sql"
	"log/slog"
)

// Preparer prepares SQL statements.
// It's the interface accepted by New; *sql.DB, *sql.Conn and *sql.Tx all
// satisfy it, so a DB can run on a connection pool, a single connection
// or inside a transaction.
type Preparer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// DB wraps a statement preparer with placeholder parsing, array
// flattening and typed binding. Created without options it suits
// drivers with ? placeholders and discards logs; see WithBindvar and
// WithLogger.
//
// A DB carries no state of its own between calls and is safe for
// concurrent use whenever the wrapped Preparer is.
type DB struct {
	prep    Preparer
	bindvar Bindvar
	log     *slog.Logger
}

// Option configures a DB created by New.
type Option func(*DB)

// WithBindvar sets the positional placeholder style rewritten into
// prepared queries. Use BindDollar for PostgreSQL drivers.
func WithBindvar(v Bindvar) Option {
	return func(db *DB) {
		db.bindvar = v
	}
}

// WithLogger sets the logger prepared queries are reported to at debug
// level. The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(db *DB) {
		db.log = l
	}
}

/*
New wraps a prepared-statement API with placeholder parsing.

	sqlDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	db := pdowrap.New(sqlDB)
	n, err := db.Exec(ctx,
		"UPDATE users SET active = :active WHERE id IN(:id)",
		pdowrap.Named{
			{"active<b>", false},
			{"id[i]", []int{1, 5, 15}},
		},
	)
*/
func New(p Preparer, opts ...Option) *DB {
	db := &DB{
		prep: p,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

/*
PrepareBind parses the parameter set, rewrites the query and prepares a
statement carrying the resulting bind list. The statement is owned by
the caller:

	stmt, err := db.PrepareBind(ctx,
		"SELECT id, name FROM users WHERE id IN(:id)",
		pdowrap.Named{{"id[i]", ids}},
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	rows, err := stmt.Query(ctx)

Parse and prepare failures propagate unchanged; nothing is retried.
*/
func (db *DB) PrepareBind(ctx context.Context, query string, params Params) (*Stmt, error) {
	parsed, binds, err := Parse(query, params)
	if err != nil {
		return nil, err
	}
	parsed = Rebind(db.bindvar, parsed)
	db.log.DebugContext(ctx, "preparing query", "query", parsed, "binds", len(binds))

	stmt, err := db.prep.PrepareContext(ctx, parsed)
	if err != nil {
		return nil, err
	}
	return &Stmt{stmt: stmt, query: parsed, binds: binds}, nil
}

// Exec prepares, binds and executes a query and reports the number of
// affected rows. On any failure the count is -1, which no successful
// execution returns.
func (db *DB) Exec(ctx context.Context, query string, params Params) (int64, error) {
	stmt, err := db.PrepareBind(ctx, query, params)
	if err != nil {
		return -1, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(ctx)
	if err != nil {
		return -1, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return -1, err
	}
	return n, nil
}

// FetchAll prepares, binds and executes a query and scans every row of
// the result.
func (db *DB) FetchAll(ctx context.Context, query string, params Params) ([]Row, error) {
	stmt, err := db.PrepareBind(ctx, query, params)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	return stmt.FetchAll(ctx)
}

// FetchOne prepares, binds and executes a query and scans the first row
// of the result, releasing the cursor before returning. An empty result
// returns (nil, nil).
func (db *DB) FetchOne(ctx context.Context, query string, params Params) (Row, error) {
	stmt, err := db.PrepareBind(ctx, query, params)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	return stmt.FetchOne(ctx)
}

// FetchColumn prepares, binds and executes a query and returns the first
// column of the first row of the result, or (nil, nil) when the result
// is empty.
func (db *DB) FetchColumn(ctx context.Context, query string, params Params) (any, error) {
	stmt, err := db.PrepareBind(ctx, query, params)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	return stmt.FetchColumn(ctx)
}
