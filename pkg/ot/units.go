package ot

import "unicode/utf8"

// Units measures and slices a document in whatever granularity an
// Operation's positions are expressed in. spec.md §3 leaves this
// choice to the implementation as long as it's applied consistently;
// this package defaults to Unicode code points (runes), the direct
// analogue of the reference's code-point-indexed Python str slicing.
//
// Callers that need user-perceived-character boundaries (so a
// Delete/Skip can never split a flag emoji or a combining sequence)
// can supply a grapheme-cluster Units from the sibling otunits
// package to every *WithUnits entry point instead.
type Units interface {
	// Len returns the length of s measured in this unit.
	Len(s string) int

	// Advance returns the byte offset reached after consuming n units
	// of doc starting at byte offset pos, and whether doc had at
	// least n units remaining from pos.
	Advance(doc string, pos, n int) (int, bool)
}

// runeUnits measures documents in Unicode code points.
type runeUnits struct{}

// RuneUnits is the default Units strategy: one unit per Unicode code
// point, matching Go's native rune indexing.
var RuneUnits Units = runeUnits{}

func (runeUnits) Len(s string) int {
	return utf8.RuneCountInString(s)
}

func (runeUnits) Advance(doc string, pos, n int) (int, bool) {
	for ; n > 0; n-- {
		if pos >= len(doc) {
			return pos, false
		}
		_, size := utf8.DecodeRuneInString(doc[pos:])
		pos += size
	}
	return pos, true
}
