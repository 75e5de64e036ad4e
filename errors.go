package pdowrap

import "errors"

// ErrMalformedParamName reports a named parameter key that does not match
// the accepted grammar: an optional leading colon, an identifier of word
// characters, then an optional <X> or [X] type suffix. The error returned
// by Parse wraps this sentinel and names the offending key; test for it
// with errors.Is.
var ErrMalformedParamName = errors.New("malformed parameter name")
