package pdowrap

import "database/sql"

// Bind is one bind instruction produced by Parse: the placeholder it
// targets, the raw value and the declared type. Name is set (without the
// leading colon) for a named placeholder, Ordinal is the 1-based position
// for a ? placeholder; one Parse call fills one of the two for every
// bind it returns.
type Bind struct {
	Name    string
	Ordinal int
	Value   any
	Type    ParamType
}

// Binds is the ordered bind list for one query.
type Binds []Bind

// Args converts the bind list into driver arguments: sql.Named values
// for named binds, plain values for positional ones, with the declared
// type applied to every value.
func (b Binds) Args() []any {
	if len(b) == 0 {
		return nil
	}
	args := make([]any, 0, len(b))
	for _, bind := range b {
		v := bind.Type.convert(bind.Value)
		if bind.Name != "" {
			args = append(args, sql.Named(bind.Name, v))
		} else {
			args = append(args, v)
		}
	}
	return args
}
