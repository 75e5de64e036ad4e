package pdowrap

import (
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// Bindvar is the positional placeholder style of a target driver.
//
// Queries are written with ? placeholders; when a DB is configured with
// BindDollar they are renumbered to $1, $2... at prepare time:
//
//	db := pdowrap.New(sqlDB, pdowrap.WithBindvar(pdowrap.BindDollar))
//
// or, when the driver name is at hand:
//
//	db := pdowrap.New(sqlDB, pdowrap.WithBindvar(pdowrap.BindvarForDriver("pgx")))
type Bindvar int8

const (
	// BindQuestion keeps ? placeholders as they are (MySQL, SQLite).
	BindQuestion Bindvar = iota
	// BindDollar replaces ? placeholders with $1, $2... (PostgreSQL).
	BindDollar
)

// BindvarForDriver returns the placeholder style of a registered
// database/sql driver name. Unknown names get BindQuestion.
func BindvarForDriver(name string) Bindvar {
	switch name {
	case "pgx", "pgx/v4", "pgx/v5", "postgres", "pq":
		return BindDollar
	}
	return BindQuestion
}

// Rebind rewrites ? placeholders in query to the given style. Question
// marks inside string literals, quoted identifiers and comments are left
// alone; named placeholders pass through untouched.
func Rebind(v Bindvar, query string) string {
	if v != BindDollar {
		return query
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	n := 0
	for i := 0; i < len(query); {
		switch c := query[i]; c {
		case '\'', '"', '`':
			i = copyQuoted(buf, query, i)
		case '-':
			if i+1 < len(query) && query[i+1] == '-' {
				i = copyLineComment(buf, query, i)
			} else {
				buf.WriteByte(c)
				i++
			}
		case '/':
			if i+1 < len(query) && query[i+1] == '*' {
				i = copyBlockComment(buf, query, i)
			} else {
				buf.WriteByte(c)
				i++
			}
		case '?':
			n++
			buf.WriteByte('$')
			buf.B = strconv.AppendInt(buf.B, int64(n), 10)
			i++
		default:
			buf.WriteByte(c)
			i++
		}
	}
	return buf.String()
}
