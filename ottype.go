// Package ottype is the public facade over the text operational-
// transformation algebra in pkg/ot. It re-exports the six entry
// points — Check, Normalize, Apply, InverseApply, Transform, Compose
// — and transparently substitutes pkg/otaccel's rope-backed
// implementation of Apply and InverseApply for documents above
// sizeThreshold, and otaccel's Compose passthrough whenever the
// extensions are enabled, mirroring the reference implementation's
// core/core_boost split.
//
// Set OTTYPE_NO_EXTENSIONS to any truthy value to force the pure
// implementation unconditionally, regardless of document size.
package ottype

import (
	"os"
	"strconv"

	"github.com/coreseekdev/ottype/pkg/ot"
	"github.com/coreseekdev/ottype/pkg/otaccel"
)

// sizeThreshold is the document length (in bytes) above which the
// facade prefers otaccel's rope over pkg/ot's plain string handling.
// Below it, a rope's tree overhead costs more than the O(n) splice it
// would save — small documents are the common case and shouldn't pay
// for an accelerated path they don't need.
const sizeThreshold = 8192

var noExtensions = isTruthy(os.Getenv("OTTYPE_NO_EXTENSIONS"))

func isTruthy(s string) bool {
	if s == "" {
		return false
	}
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

// Check reports whether op is canonical: see ot.Check.
func Check(op []ot.Raw) bool {
	return ot.Check(op)
}

// Normalize turns any atom-valid op into canonical form: see ot.Normalize.
func Normalize(op []ot.Raw) ([]ot.Raw, error) {
	return ot.Normalize(op)
}

// Apply executes op against doc: see ot.Apply. Delegates to otaccel
// when doc is long enough to benefit and OTTYPE_NO_EXTENSIONS isn't set.
func Apply(doc string, op []ot.Raw) (string, error) {
	if useAccel(doc) {
		return otaccel.Apply(doc, op)
	}
	return ot.Apply(doc, op)
}

// InverseApply reverses Apply: see ot.InverseApply.
func InverseApply(newDoc string, op []ot.Raw) (string, error) {
	if useAccel(newDoc) {
		return otaccel.InverseApply(newDoc, op)
	}
	return ot.InverseApply(newDoc, op)
}

// Transform rebases opA against concurrent opB: see ot.Transform.
// There is no accelerated Transform — it never touches a document.
func Transform(opA, opB []ot.Raw, side ot.Side) ([]ot.Raw, error) {
	return ot.Transform(opA, opB, side)
}

// Compose fuses op1 and op2: see ot.Compose.
func Compose(op1, op2 []ot.Raw) ([]ot.Raw, error) {
	if noExtensions {
		return ot.Compose(op1, op2)
	}
	return otaccel.Compose(op1, op2)
}

func useAccel(doc string) bool {
	if noExtensions {
		return false
	}
	return len(doc) > sizeThreshold
}
