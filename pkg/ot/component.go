package ot

import "fmt"

// Kind identifies which of the three component variants a Component
// carries. The variant set is closed: there are exactly three kinds
// of atom in the wire format, so Kind is matched exhaustively
// wherever it's switched on rather than treated as extensible.
type Kind int

const (
	// Skip retains n units of the document unchanged.
	Skip Kind = iota
	// Insert adds new text at the current position.
	Insert
	// Delete removes text at the current position, carrying the text
	// it expects to find there so apply can detect a stale operation.
	Delete
)

func (k Kind) String() string {
	switch k {
	case Skip:
		return "skip"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Component is one atom of an Operation: Skip(N), Insert(S), or
// Delete(S). N holds the Skip length and Text the Insert/Delete
// payload; each is meaningless for the kinds that don't use it.
type Component struct {
	Kind Kind
	N    int    // valid when Kind == Skip
	Text string // valid when Kind == Insert or Kind == Delete
}

// SkipOp builds a Skip component.
func SkipOp(n int) Component { return Component{Kind: Skip, N: n} }

// InsertOp builds an Insert component.
func InsertOp(s string) Component { return Component{Kind: Insert, Text: s} }

// DeleteOp builds a Delete component.
func DeleteOp(s string) Component { return Component{Kind: Delete, Text: s} }

// Len returns the component's length in index units: its Skip count,
// or the unit-length of its text payload.
func (c Component) Len(u Units) int {
	switch c.Kind {
	case Skip:
		return c.N
	default:
		return u.Len(c.Text)
	}
}

func (c Component) String() string {
	switch c.Kind {
	case Skip:
		return fmt.Sprintf("skip(%d)", c.N)
	case Insert:
		return fmt.Sprintf("insert(%q)", c.Text)
	case Delete:
		return fmt.Sprintf("delete(%q)", c.Text)
	default:
		return "invalid"
	}
}

// Raw is one wire atom: an int (Skip), a string (Insert), or a
// map[string]interface{} with a single "d" key (Delete). It is the
// decode/encode boundary between an Operation and its JSON-ish wire
// representation.
type Raw = interface{}

// resolve decodes one wire atom into a Component. It recognises an
// int > 0 as Skip, a non-empty string as Insert, and a map with
// exactly the entry "d" bound to a non-empty string as Delete;
// anything else fails.
func resolve(raw Raw) (Component, error) {
	switch v := raw.(type) {
	case int:
		if v <= 0 {
			return Component{}, newValueError("invalid skip: %d", v)
		}
		return SkipOp(v), nil

	case string:
		if v == "" {
			return Component{}, newValueError("invalid insert: empty string")
		}
		return InsertOp(v), nil

	case map[string]interface{}:
		if len(v) != 1 {
			return Component{}, newValueError("invalid delete: must have exactly one key")
		}
		raw, ok := v["d"]
		if !ok {
			return Component{}, newValueError("invalid delete: missing \"d\" key")
		}
		s, ok := raw.(string)
		if !ok || s == "" {
			return Component{}, newValueError("invalid delete: empty or non-string payload")
		}
		return DeleteOp(s), nil

	default:
		return Component{}, newTypeError("unexpected OT atom: %T", raw)
	}
}

// toRaw encodes a Component back to its wire atom.
func toRaw(c Component) Raw {
	switch c.Kind {
	case Skip:
		return c.N
	case Insert:
		return c.Text
	case Delete:
		return map[string]interface{}{"d": c.Text}
	default:
		panic("ot: invalid component kind")
	}
}
