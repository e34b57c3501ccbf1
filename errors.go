package sumi

import "github.com/cockroachdb/errors"

// Error kinds surfaced by Generate. Callers discriminate with errors.Is; every
// error carries enough wrapped context (offending type text, entry name/index)
// to locate the cause.
var (
	// ErrInvalidInterface reports that the interface description is not a
	// JSON sequence of ABI entry objects.
	ErrInvalidInterface = errors.New("invalid interface description")

	// ErrMalformedType reports a raw type string that does not parse
	// against the ABI type grammar.
	ErrMalformedType = errors.New("malformed type")

	// ErrFilterType reports a template filter applied to a non-string
	// model value.
	ErrFilterType = errors.New("filter expects a string value")

	// ErrRender reports a structural template expansion failure.
	ErrRender = errors.New("template expansion failed")
)
