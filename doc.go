// Package pdowrap rewrites SQL placeholders and types bound parameters
// in front of database/sql prepared statements.
/*

Placeholder Rewriting

pdowrap accepts a query with positional (?) or named (:name) placeholders
and a matching parameter set, and provides a way to:
- Declare a bind type on a named parameter with a <i>, <b> or <s> key
  suffix,
- Flatten an array value into one placeholder per element with a [i],
  [b] or [s] key suffix, rewriting the query accordingly,
- Convert ? placeholders into numbered ones for PostgreSQL ($1, $2, etc).

A flattened IN clause looks like this:

	rows, err := db.FetchAll(ctx,
		"SELECT id, name FROM users WHERE id IN(:id)",
		pdowrap.Named{{"id[i]", []int{1, 5, 15}}},
	)

The query is prepared as "SELECT id, name FROM users WHERE id
IN(:id0,:id1,:id2)" with three integer binds.
*/
package pdowrap
