package ot

import "fmt"

// TypeError is returned when a caller passes an argument of the wrong
// shape — the Go analogue of the reference implementation's
// isinstance-driven TypeError. Most of spec.md's type-error cases
// cannot occur in Go thanks to static typing (a string parameter
// cannot receive an int); TypeError survives only at the one dynamic
// boundary this package still has: decoding an arbitrary wire atom
// (interface{}/any) that is neither an int, a string, nor a
// map[string]interface{}. A map of the wrong shape is a ValueError.
type TypeError struct {
	msg string
}

func (e *TypeError) Error() string { return e.msg }

func newTypeError(format string, args ...interface{}) error {
	return &TypeError{msg: fmt.Sprintf(format, args...)}
}

// ValueError is returned when an argument has the right shape but is
// semantically invalid: a non-canonical operation, a skip past the
// end of the document, mismatched delete/insert text, or an invalid
// side tag.
type ValueError struct {
	msg string
}

func (e *ValueError) Error() string { return e.msg }

func newValueError(format string, args ...interface{}) error {
	return &ValueError{msg: fmt.Sprintf(format, args...)}
}

// NewValueError builds a ValueError for callers outside this package
// that share Apply/InverseApply's document-consistency contract —
// namely otaccel, whose rope-backed Apply/InverseApply must fail with
// the same error type pkg/ot does so errors.As recovers identically
// regardless of which backend the facade picked.
func NewValueError(format string, args ...interface{}) error {
	return newValueError(format, args...)
}
