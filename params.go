package pdowrap

// Params is a parameter set accepted by Parse and by the DB methods.
// It is a closed interface with two implementations, Positional and
// Named; the implementation selects the binding mode, so positional and
// named parameters never mix within one call. A nil Params means no
// parameters at all.
type Params interface {
	isParams()
}

// Positional carries values for ? placeholders in query order.
// Every value binds with the string type and the query is never
// rewritten.
type Positional []any

func (Positional) isParams() {}

// Named carries values for :name placeholders. Unlike a map it keeps
// insertion order, which is the order values bind in.
type Named []NamedValue

func (Named) isParams() {}

// NamedValue is a single named parameter. Name is the raw key: an
// identifier with an optional leading colon and an optional type suffix,
// like "id", ":id", "id<i>" or ":id[i]".
type NamedValue struct {
	Name  string
	Value any
}
