package ot

// Apply executes op against doc and returns the resulting document,
// using code-point (rune) indexing. See ApplyWithUnits to apply under
// a different Units strategy, e.g. grapheme clusters.
func Apply(doc string, raw []Raw) (string, error) {
	return ApplyWithUnits(doc, raw, RuneUnits)
}

// ApplyWithUnits is Apply parameterised over the index unit raw's
// Skip/Delete lengths are measured in.
//
// op must be canonical. Walking it left to right: Skip(n) fails
// "skip exceeds doc length" if fewer than n units remain; Insert(s)
// emits s; Delete(s) fails "inconsistent delete" if the next len(s)
// units of doc don't equal s exactly — Delete carries the text it
// expects to remove, turning Apply into a consistency check that
// catches an operation built against a stale document. Any text past
// the last component is carried through unchanged.
func ApplyWithUnits(doc string, raw []Raw, u Units) (string, error) {
	if !Check(raw) {
		return "", newValueError("invalid OTs")
	}
	op, err := decodeAll(raw)
	if err != nil {
		return "", err
	}

	var out []byte
	pos := 0

	for _, c := range op {
		switch c.Kind {
		case Skip:
			end, ok := u.Advance(doc, pos, c.N)
			if !ok {
				return "", newValueError("skip exceeds doc length")
			}
			out = append(out, doc[pos:end]...)
			pos = end

		case Insert:
			out = append(out, c.Text...)

		case Delete:
			end, ok := u.Advance(doc, pos, u.Len(c.Text))
			if !ok || doc[pos:end] != c.Text {
				return "", newValueError("inconsistent delete: expected %q, found %q", c.Text, safeSlice(doc, pos, end, ok))
			}
			pos = end
		}
	}

	out = append(out, doc[pos:]...)
	return string(out), nil
}

func safeSlice(doc string, pos, end int, ok bool) string {
	if !ok || pos > len(doc) {
		return ""
	}
	if end > len(doc) {
		end = len(doc)
	}
	return doc[pos:end]
}

// InverseApply reverses Apply: given the document Apply(doc, op)
// would have produced, it recovers doc. Uses code-point (rune)
// indexing; see InverseApplyWithUnits for other Units.
func InverseApply(newDoc string, raw []Raw) (string, error) {
	return InverseApplyWithUnits(newDoc, raw, RuneUnits)
}

// InverseApplyWithUnits is InverseApply parameterised over Units.
//
// It first computes lastPos, the byte offset Apply's forward pass
// would have reached through Skip and Insert (Delete contributes 0,
// since deleted text isn't present in newDoc). The tail
// newDoc[lastPos:] is carried through verbatim. Components are then
// walked in reverse: Skip(n) prepends the n units ending at the
// cursor and steps it back; Insert(s) verifies the text ending at the
// cursor equals s (failing "inconsistent delete" otherwise) and steps
// back; Delete(s) prepends s, rematerialising the deleted text.
func InverseApplyWithUnits(newDoc string, raw []Raw, u Units) (string, error) {
	if !Check(raw) {
		return "", newValueError("invalid OTs")
	}
	op, err := decodeAll(raw)
	if err != nil {
		return "", err
	}

	lastPos := 0
	for _, c := range op {
		switch c.Kind {
		case Skip:
			end, ok := u.Advance(newDoc, lastPos, c.N)
			if !ok {
				return "", newValueError("skip exceeds doc length")
			}
			lastPos = end
		case Insert:
			end, ok := u.Advance(newDoc, lastPos, u.Len(c.Text))
			if !ok {
				return "", newValueError("skip exceeds doc length")
			}
			lastPos = end
		case Delete:
			// contributes nothing to the forward cursor
		}
	}
	if lastPos > len(newDoc) {
		return "", newValueError("skip exceeds doc length")
	}

	// Walk in reverse, building the result back-to-front.
	tail := newDoc[lastPos:]
	var chunks [][]byte
	chunks = append(chunks, []byte(tail))

	for i := len(op) - 1; i >= 0; i-- {
		c := op[i]
		switch c.Kind {
		case Skip:
			start := backUp(newDoc, lastPos, c.N, u)
			chunks = append(chunks, []byte(newDoc[start:lastPos]))
			lastPos = start

		case Insert:
			start := backUp(newDoc, lastPos, u.Len(c.Text), u)
			if newDoc[start:lastPos] != c.Text {
				return "", newValueError("inconsistent delete: expected %q, found %q", c.Text, newDoc[start:lastPos])
			}
			lastPos = start

		case Delete:
			chunks = append(chunks, []byte(c.Text))
		}
	}
	chunks = append(chunks, []byte(newDoc[:lastPos]))

	var out []byte
	for i := len(chunks) - 1; i >= 0; i-- {
		out = append(out, chunks[i]...)
	}
	return string(out), nil
}

// backUp returns the byte offset n units before pos in doc. Since
// InverseApply's forward pre-scan already established those n units
// exist, it counts the units in doc[:pos] and advances forward from
// byte 0 by that count minus n.
func backUp(doc string, pos, n int, u Units) int {
	// Binary search isn't needed: units are consumed front-to-back
	// from byte 0 up to pos in the common case, so walk forward from
	// the start once to find the rune boundary n units back. Exact
	// equivalence to "byte pos - n units" regardless of Units impl.
	total := u.Len(doc[:pos])
	start, _ := u.Advance(doc, 0, total-n)
	return start
}
