// Package otaccel is a drop-in accelerated backend for
// github.com/coreseekdev/ottype/pkg/ot's Apply and InverseApply,
// sharing their exact contract but assembling the result by
// concatenating rope nodes instead of appending to a byte slice. doc
// itself is held as a single-leaf rope, so each slice read from it
// walks the leaf from its first rune.
//
// Transform has no counterpart here and Compose is only a passthrough
// to ot.Compose — neither touches a document, only the two operations
// being combined, so there's nothing for a rope to speed up. See the
// root package for the facade that picks between the two backends.
//
// otaccel is rune-indexed only: Rope caches length and slices in code
// points, so a caller needing grapheme-cluster indexing (pkg/otunits)
// must use pkg/ot's *WithUnits entry points instead of this package.
package otaccel

import (
	"unicode/utf8"

	"github.com/coreseekdev/ottype/pkg/ot"
	"github.com/coreseekdev/ottype/pkg/rope"
)

// Compose is ot.Compose's contract. Compose never touches a document
// — only the two operations being fused — so a rope buys nothing
// here; this is a thin passthrough kept so the facade's delegation
// table (§6) can treat all three entry points uniformly.
func Compose(raw1, raw2 []ot.Raw) ([]ot.Raw, error) {
	return ot.Compose(raw1, raw2)
}

// Apply is ot.Apply's contract, built on a rope instead of a string.
func Apply(doc string, raw []ot.Raw) (string, error) {
	op, err := ot.Decode(raw)
	if err != nil {
		return "", err
	}

	r := rope.New(doc)
	out := rope.Empty()
	pos := 0

	for _, c := range op {
		switch c.Kind {
		case ot.Skip:
			end := pos + c.N
			if end > r.Length() {
				return "", ot.NewValueError("skip exceeds doc length")
			}
			chunk, _ := r.Slice(pos, end)
			out = out.Concat(rope.New(chunk))
			pos = end

		case ot.Insert:
			out = out.Concat(rope.New(c.Text))

		case ot.Delete:
			n := utf8.RuneCountInString(c.Text)
			end := pos + n
			if end > r.Length() {
				return "", ot.NewValueError("inconsistent delete: expected %q, found %q", c.Text, "")
			}
			found, _ := r.Slice(pos, end)
			if found != c.Text {
				return "", ot.NewValueError("inconsistent delete: expected %q, found %q", c.Text, found)
			}
			pos = end
		}
	}

	if pos < r.Length() {
		tail, _ := r.Slice(pos, r.Length())
		out = out.Concat(rope.New(tail))
	}

	return out.String(), nil
}

// InverseApply is ot.InverseApply's contract, built on a rope. It
// mirrors ot.InverseApplyWithUnits's reverse walk exactly, just
// reading newDoc's slices from a rope instead of a string and
// assembling the result via rope.Concat rather than byte-slice
// append, so the no-op "nothing changed" region of a large document
// never gets copied component by component.
func InverseApply(newDoc string, raw []ot.Raw) (string, error) {
	op, err := ot.Decode(raw)
	if err != nil {
		return "", err
	}

	r := rope.New(newDoc)

	lastPos := 0
	for _, c := range op {
		switch c.Kind {
		case ot.Skip:
			lastPos += c.N
		case ot.Insert:
			lastPos += utf8.RuneCountInString(c.Text)
		case ot.Delete:
			// contributes nothing to the forward cursor
		}
	}
	if lastPos > r.Length() {
		return "", ot.NewValueError("skip exceeds doc length")
	}

	tail, _ := r.Slice(lastPos, r.Length())
	chunks := []string{tail}

	for i := len(op) - 1; i >= 0; i-- {
		c := op[i]
		switch c.Kind {
		case ot.Skip:
			start := lastPos - c.N
			seg, _ := r.Slice(start, lastPos)
			chunks = append(chunks, seg)
			lastPos = start

		case ot.Insert:
			n := utf8.RuneCountInString(c.Text)
			start := lastPos - n
			seg, _ := r.Slice(start, lastPos)
			if seg != c.Text {
				return "", ot.NewValueError("inconsistent delete: expected %q, found %q", c.Text, seg)
			}
			lastPos = start

		case ot.Delete:
			chunks = append(chunks, c.Text)
		}
	}
	head, _ := r.Slice(0, lastPos)
	chunks = append(chunks, head)

	out := rope.Empty()
	for i := len(chunks) - 1; i >= 0; i-- {
		out = out.Concat(rope.New(chunks[i]))
	}
	return out.String(), nil
}
