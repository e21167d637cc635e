package ot

// Compose fuses op1 and op2, two operations meant to be applied one
// after the other, into a single equivalent operation, using
// code-point (rune) indexing. See ComposeWithUnits for other Units.
func Compose(raw1, raw2 []Raw) ([]Raw, error) {
	return ComposeWithUnits(raw1, raw2, RuneUnits)
}

// ComposeWithUnits is Compose parameterised over Units.
//
// ComposeWithUnits satisfies
//
//	Apply(Apply(doc, op1), op2) == Apply(doc, ComposeWithUnits(op1, op2, u))
//
// for any doc on which both sides are defined.
//
// Algorithm: open an Appender over the result and a Taker over op1,
// then walk op2. Skip(n) pulls n units out of op1 with hint 'd' (a
// concurrent Delete in op1 is kept whole) and appends every chunk
// through unchanged. Insert(s) appends directly — it's new text op1
// never saw. Delete(s) also pulls from op1 with hint 'd', but walks s
// in step via a parallel offset: a Skip chunk of k units means op1
// left k units of the intermediate doc alone, so they become
// Delete(s[offset:offset+k]); an Insert chunk must equal
// s[offset:offset+k] exactly — op2 is deleting text op1 just
// inserted, so both cancel and nothing is emitted, or compose fails
// if the text doesn't match; a Delete chunk from op1 carries straight
// through, since op2 is deleting further into a doc op1 had already
// started cutting from. Whatever's left of op1 after op2 is exhausted
// is drained and appended, then the result is trimmed.
func ComposeWithUnits(raw1, raw2 []Raw, u Units) ([]Raw, error) {
	if !Check(raw1) || !Check(raw2) {
		return nil, newValueError("invalid OTs")
	}

	op1, err := decodeAll(raw1)
	if err != nil {
		return nil, err
	}
	op2, err := decodeAll(raw2)
	if err != nil {
		return nil, err
	}

	var app appender
	take := newTaker(op1, u)

	for _, c2 := range op2 {
		switch c2.Kind {
		case Skip:
			n := c2.N
			for n > 0 {
				chunk := take.take(n, indivisibleDelete)
				app.append(chunk)
				if chunk == nil {
					break // unreachable under canonical inputs; see spec.md §9
				}
				switch chunk.Kind {
				case Skip:
					n -= chunk.N
				case Insert:
					n -= u.Len(chunk.Text)
				case Delete:
					// op1 already removed this text; it
					// isn't in the intermediate doc op2 walks
				}
			}

		case Insert:
			app.append(&Component{Kind: Insert, Text: c2.Text})

		case Delete:
			text := c2.Text
			offset := 0
			n := u.Len(text)

			for n > 0 {
				chunk := take.take(n, indivisibleDelete)
				if chunk == nil {
					break // unreachable under canonical inputs; see spec.md §9
				}

				switch chunk.Kind {
				case Skip:
					end, _ := u.Advance(text, offset, chunk.N)
					app.append(&Component{Kind: Delete, Text: text[offset:end]})
					offset = end
					n -= chunk.N

				case Insert:
					k := u.Len(chunk.Text)
					end, _ := u.Advance(text, offset, k)
					want := text[offset:end]
					if want != chunk.Text {
						return nil, newValueError("inconsistent delete in the second OTs: expected %q, found %q", want, chunk.Text)
					}
					offset = end
					n -= k

				case Delete:
					app.append(chunk)
				}
			}
		}
	}

	for {
		chunk := take.take(infinite, indivisibleDelete)
		if chunk == nil {
			break
		}
		app.append(chunk)
	}

	trim(&app.out)
	return app.out.ToRaw(), nil
}
