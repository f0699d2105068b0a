package diagnostic

import "errors"

var (
	// ErrNotFound reports an unknown root id or an unknown static namespace.
	ErrNotFound = errors.New("not found")
	// ErrMalformedPath reports a field path that does not follow the grammar.
	ErrMalformedPath = errors.New("malformed field path")
	// ErrTargetResolution reports a path that does not address a scalar leaf.
	ErrTargetResolution = errors.New("cannot resolve target")
	// ErrIndexOutOfRange reports a well-formed index past the end of a sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrCoercion reports a value whose shape does not fit the destination kind.
	ErrCoercion = errors.New("cannot coerce value")
)

// Codes reported for each failure class.
const (
	CodeNotFound          = "not_found"
	CodeMalformedPath     = "malformed_path"
	CodeTargetResolution  = "target_resolution"
	CodeIndexOutOfRange   = "index_out_of_range"
	CodeCoercion          = "coercion"
	CodeUnknown           = "unknown"
	CodeSkippedStep       = "skipped_step"
	CodeAppliedDefinition = "applied"
)

var codes = []struct {
	err  error
	code string
}{
	{ErrNotFound, CodeNotFound},
	{ErrMalformedPath, CodeMalformedPath},
	{ErrTargetResolution, CodeTargetResolution},
	{ErrIndexOutOfRange, CodeIndexOutOfRange},
	{ErrCoercion, CodeCoercion},
}

// CodeOf returns the code of the first failure class err belongs to.
func CodeOf(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}

	return CodeUnknown
}
