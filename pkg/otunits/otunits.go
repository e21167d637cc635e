// Package otunits supplies a grapheme-cluster ot.Units for callers
// that need Skip/Delete boundaries to land on user-perceived
// characters rather than bare Unicode code points — so an operation
// can never split a flag emoji or a base-plus-combining-mark sequence
// in two. pkg/ot defaults to ot.RuneUnits; pass Graphemes to any
// *WithUnits entry point to opt into this instead.
package otunits

import (
	"github.com/clipperhouse/uax29/graphemes"

	"github.com/coreseekdev/ottype/pkg/ot"
)

type graphemeUnits struct{}

// Graphemes measures and slices text in grapheme clusters, via
// uax29's UAX #29 segmenter.
var Graphemes ot.Units = graphemeUnits{}

func (graphemeUnits) Len(s string) int {
	return len(graphemes.SegmentAllString(s))
}

// Advance re-segments all of doc from pos on every call rather than
// caching cluster boundaries across calls, so each call costs time
// proportional to the rest of doc, not to n.
func (graphemeUnits) Advance(doc string, pos, n int) (int, bool) {
	segs := graphemes.SegmentAllString(doc[pos:])
	if n > len(segs) {
		return pos, false
	}

	off := pos
	for i := 0; i < n; i++ {
		off += len(segs[i])
	}
	return off, true
}
