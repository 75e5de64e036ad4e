package pdowrap

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// paramNameRE is the raw key grammar: an optional leading colon, a base
// identifier of word characters, then an optional <X> or [X] suffix with
// X a single optional word character. The whole suffix is captured with
// its brackets so that <> and [] can be told apart from no suffix at all.
var paramNameRE = regexp.MustCompile(`^:?(\w+)(<\w?>|\[\w?\])?$`)

/*
Parse rewrites a query and turns a parameter set into an ordered bind
list.

Positional values bind to ? placeholders in the order given and the
query comes back unchanged:

	query, binds, err := pdowrap.Parse(
		"SELECT name FROM users WHERE id = ? AND age > ?",
		pdowrap.Positional{5, 21},
	)

Named values bind to :name placeholders. A key may carry a type suffix
selecting the bind type: <i> for int, <b> for bool, <s> or nothing for
string. The leading colon is optional:

	query, binds, err := pdowrap.Parse(
		"SELECT name FROM users WHERE id = :id AND active = :active",
		pdowrap.Named{
			{"id<i>", "42"},
			{"active", 1},
		},
	)

A square-bracket suffix flattens a non-empty array value into one
indexed placeholder per element and rewrites every occurrence of the
original placeholder in the query:

	query, binds, err := pdowrap.Parse(
		"SELECT name FROM users WHERE id IN(:id)",
		pdowrap.Named{{"id[i]", []int{1, 5, 15}}},
	)
	// query is "SELECT name FROM users WHERE id IN(:id0,:id1,:id2)"

Only whole placeholder tokens are rewritten, so flattening :id leaves
:id_2 and :id999 alone, as well as anything inside string literals,
quoted identifiers and comments. An empty array under a square-bracket
suffix binds nothing and rewrites nothing: the untouched placeholder is
left to fail at execution time.

A key that does not match the grammar fails the whole call with an error
wrapping ErrMalformedParamName; no partially rewritten query or bind
list is returned.
*/
func Parse(query string, params Params) (string, Binds, error) {
	switch p := params.(type) {
	case Positional:
		return query, bindPositional(p), nil
	case Named:
		return bindNamed(query, p)
	}
	return query, nil, nil
}

/*
ParseArgs is Parse with the bind list already converted into driver
arguments, for callers talking to database/sql directly:

	query, args, err := pdowrap.ParseArgs(
		"SELECT name FROM users WHERE id IN(:id)",
		pdowrap.Named{{"id[i]", []int{1, 5, 15}}},
	)
	if err != nil {
		return err
	}
	rows, err := sqlDB.QueryContext(ctx, query, args...)
*/
func ParseArgs(query string, params Params) (string, []any, error) {
	query, binds, err := Parse(query, params)
	if err != nil {
		return "", nil, err
	}
	return query, binds.Args(), nil
}

func bindPositional(values Positional) Binds {
	if len(values) == 0 {
		return nil
	}
	binds := make(Binds, 0, len(values))
	for i, v := range values {
		binds = append(binds, Bind{Ordinal: i + 1, Value: v, Type: ParamString})
	}
	return binds
}

func bindNamed(query string, params Named) (string, Binds, error) {
	if len(params) == 0 {
		return query, nil, nil
	}
	binds := make(Binds, 0, len(params))
	for _, p := range params {
		m := paramNameRE.FindStringSubmatch(p.Name)
		if m == nil {
			return "", nil, fmt.Errorf("%w: %q", ErrMalformedParamName, p.Name)
		}
		base, suffix := m[1], m[2]
		typ := typeFromSuffix(suffix)

		if len(suffix) > 0 && suffix[0] == '[' {
			if elems, ok := sliceValues(p.Value); ok {
				if len(elems) == 0 {
					continue
				}
				query = flattenQuery(query, base, elems, typ, &binds)
				continue
			}
		}
		binds = append(binds, Bind{Name: base, Value: p.Value, Type: typ})
	}
	return query, binds, nil
}

// flattenQuery mints one indexed token per array element, appends the
// element binds and rewrites every whole-token occurrence of :base in
// the query to the comma-joined token list.
func flattenQuery(query, base string, elems []any, typ ParamType, binds *Binds) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for k, v := range elems {
		token := base + strconv.Itoa(k)
		if k > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte(':')
		buf.WriteString(token)
		*binds = append(*binds, Bind{Name: token, Value: v, Type: typ})
	}
	return replaceToken(query, base, buf.String())
}

// typeFromSuffix maps the letter inside a <X> or [X] suffix to a bind
// type. A missing or unknown letter means string; the letters are
// case-sensitive.
func typeFromSuffix(suffix string) ParamType {
	if len(suffix) < 3 {
		return ParamString
	}
	switch suffix[1] {
	case 'i':
		return ParamInt
	case 'b':
		return ParamBool
	}
	return ParamString
}

// sliceValues expands an array or slice value into its elements.
// []byte does not count: it is a scalar byte string, not a value list.
func sliceValues(v any) ([]any, bool) {
	switch v.(type) {
	case nil, []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, false
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}
