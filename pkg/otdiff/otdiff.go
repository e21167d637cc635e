// Package otdiff computes an edit operation between two document
// revisions directly, rather than requiring a caller to already have
// one in hand. It supplies the convenience the reference
// implementation's facade calls diff (ottype/__init__.py imports
// core.diff), whose body had dropped out of the lineage this port
// was built from.
package otdiff

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/coreseekdev/ottype/pkg/ot"
)

// Diff returns the canonical operation taking oldDoc to newDoc, i.e.
//
//	ot.Apply(oldDoc, Diff(oldDoc, newDoc).ToRaw()) == newDoc
//
// It runs Myers diff via diffmatchpatch with semantic cleanup, then
// walks the result straight into an ot.Builder: an equal span becomes
// Skip, an insertion becomes Insert, a deletion becomes Delete. The
// Delete components this produces carry the exact text diffmatchpatch
// saw removed, satisfying Apply's delete-consistency check by
// construction.
func Diff(oldDoc, newDoc string) ot.Operation {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldDoc, newDoc, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	b := ot.NewBuilder()
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.Skip(utf8.RuneCountInString(d.Text))
		case diffmatchpatch.DiffInsert:
			b.Insert(d.Text)
		case diffmatchpatch.DiffDelete:
			b.Delete(d.Text)
		}
	}
	return b.Build()
}
