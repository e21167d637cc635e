package ot

// appender is a scoped cursor over a growing component list. It never
// outlives the call that owns it. append(nil) is a no-op, letting
// callers forward an optional chunk unchecked; otherwise, a component
// sharing its kind with the current tail is merged in place (Skip
// sums, Insert/Delete concatenate), and anything else is pushed.
//
// appender never trims a trailing Skip itself — see trim.
type appender struct {
	out Operation
}

func (a *appender) append(c *Component) {
	if c == nil {
		return
	}

	if len(a.out) > 0 {
		last := &a.out[len(a.out)-1]
		if last.Kind == c.Kind {
			switch c.Kind {
			case Skip:
				last.N += c.N
			case Insert, Delete:
				last.Text += c.Text
			}
			return
		}
	}

	a.out = append(a.out, *c)
}

// trim drops a trailing Skip component in place, if present. Run once
// per operation after every component has been appended.
func trim(op *Operation) {
	if n := len(*op); n > 0 && (*op)[n-1].Kind == Skip {
		*op = (*op)[:n-1]
	}
}

// Check reports whether raw is a canonical operation: every atom
// decodes successfully, no two consecutive components share a kind,
// and the last component is not Skip. A non-slice or malformed-atom
// input simply fails rather than panicking.
func Check(raw []Raw) bool {
	lastKind := Kind(-1)

	for _, r := range raw {
		c, err := resolve(r)
		if err != nil {
			return false
		}
		if c.Kind == lastKind {
			return false
		}
		lastKind = c.Kind
	}

	return lastKind != Skip
}

// Normalize turns any atom-valid wire sequence into its canonical
// form: adjacent same-kind components are merged and a trailing Skip
// is dropped. Unlike the other five entry points, Normalize accepts
// non-canonical input — it's the one function whose job is to produce
// canonical form, not assume it — but it still fails if any atom is
// invalid.
func Normalize(raw []Raw) ([]Raw, error) {
	var app appender
	for _, r := range raw {
		c, err := resolve(r)
		if err != nil {
			return nil, err
		}
		app.append(&c)
	}
	trim(&app.out)
	return app.out.ToRaw(), nil
}
