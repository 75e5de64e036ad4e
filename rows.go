package pdowrap

import (
	"context"
	"database/sql"
)

// Row is one fetched row keyed by column name. []byte column values are
// converted to string; everything else keeps the driver's type.
type Row map[string]any

// FetchAll executes the statement and scans every row of the result.
func (s *Stmt) FetchAll(ctx context.Context) ([]Row, error) {
	rows, err := s.Query(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []Row
	for rows.Next() {
		row, err := scanRow(rows, cols)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	// Surface errors from Close as well as from iteration: with some
	// drivers a statement that also wrote rows reports its failure here.
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchOne executes the statement and scans the first row of the result,
// releasing the cursor before returning. An empty result returns
// (nil, nil).
func (s *Stmt) FetchOne(ctx context.Context) (Row, error) {
	rows, err := s.Query(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if !rows.Next() {
		return nil, rows.Err()
	}
	row, err := scanRow(rows, cols)
	if err != nil {
		return nil, err
	}
	return row, rows.Close()
}

// FetchColumn executes the statement and returns the first column of the
// first row of the result, or (nil, nil) when the result is empty.
func (s *Stmt) FetchColumn(ctx context.Context) (any, error) {
	rows, err := s.Query(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 || !rows.Next() {
		return nil, rows.Err()
	}
	values, err := scanValues(rows, len(cols))
	if err != nil {
		return nil, err
	}
	return values[0], rows.Close()
}

func scanRow(rows *sql.Rows, cols []string) (Row, error) {
	values, err := scanValues(rows, len(cols))
	if err != nil {
		return nil, err
	}
	row := make(Row, len(cols))
	for i, col := range cols {
		row[col] = values[i]
	}
	return row, nil
}

func scanValues(rows *sql.Rows, n int) ([]any, error) {
	values := make([]any, n)
	ptrs := make([]any, n)
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	for i, v := range values {
		if b, ok := v.([]byte); ok {
			values[i] = string(b)
		}
	}
	return values, nil
}
