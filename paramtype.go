package pdowrap

import "strconv"

// ParamType is the bind type declared by a named parameter's key suffix.
// The zero value is ParamString, which is also what positional values and
// suffix-less named keys get.
type ParamType int8

const (
	ParamString ParamType = iota
	ParamInt
	ParamBool
)

var paramTypeNames = [...]string{
	ParamString: "STRING",
	ParamInt:    "INT",
	ParamBool:   "BOOL",
}

func (t ParamType) String() string {
	if t < 0 || int(t) >= len(paramTypeNames) {
		return "ParamType(" + strconv.Itoa(int(t)) + ")"
	}
	return paramTypeNames[t]
}

// convert applies the declared type to a value right before it is handed
// to the driver. Conversion is permissive: a value that does not convert
// is passed through unchanged for the driver to accept or reject.
// ParamString is the identity; drivers already encode native Go values
// the way a text protocol encodes strings, so there is nothing to do.
func (t ParamType) convert(v any) any {
	if v == nil {
		return nil
	}
	switch t {
	case ParamInt:
		return toInt64(v)
	case ParamBool:
		return toBool(v)
	}
	return v
}

func toInt64(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	case bool:
		if x {
			return int64(1)
		}
		return int64(0)
	case string:
		if n, err := strconv.ParseInt(x, 10, 64); err == nil {
			return n
		}
	case []byte:
		if n, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return n
		}
	}
	return v
}

func toBool(v any) any {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		if b, err := strconv.ParseBool(x); err == nil {
			return b
		}
		return v
	case []byte:
		if b, err := strconv.ParseBool(string(x)); err == nil {
			return b
		}
		return v
	}
	if n, ok := toInt64(v).(int64); ok {
		return n != 0
	}
	return v
}
