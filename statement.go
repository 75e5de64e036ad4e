package pdowrap

import (
	"context"
	"database/sql"
)

// Stmt is a prepared statement together with the query it was prepared
// from and the bind list applied on execution. Statements returned by
// PrepareBind are owned by the caller, who is responsible for Close;
// the DB helpers close theirs internally.
type Stmt struct {
	stmt  *sql.Stmt
	query string
	binds Binds
}

// String returns the query the statement was prepared from, after
// placeholder rewriting.
func (s *Stmt) String() string {
	return s.query
}

// Binds returns the ordered bind list applied on execution.
func (s *Stmt) Binds() Binds {
	return s.binds
}

// Exec executes the statement.
func (s *Stmt) Exec(ctx context.Context) (sql.Result, error) {
	return s.stmt.ExecContext(ctx, s.binds.Args()...)
}

// Query executes the statement and returns the resulting rows. The
// caller iterates and closes them as usual.
func (s *Stmt) Query(ctx context.Context) (*sql.Rows, error) {
	return s.stmt.QueryContext(ctx, s.binds.Args()...)
}

// QueryRow executes the statement expecting at most one row. Scan errors
// are deferred to the returned row, as with database/sql.
func (s *Stmt) QueryRow(ctx context.Context) *sql.Row {
	return s.stmt.QueryRowContext(ctx, s.binds.Args()...)
}

// Close releases the prepared statement.
func (s *Stmt) Close() error {
	return s.stmt.Close()
}
