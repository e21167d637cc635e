package ot

import "strings"

// Operation is a canonical, ordered sequence of components. It is the
// in-memory counterpart of the []Raw wire form every public entry
// point accepts and returns.
type Operation []Component

// String renders an operation for debugging, e.g. "skip(2), insert(\"ab\"), delete(\"c\")".
func (op Operation) String() string {
	parts := make([]string, len(op))
	for i, c := range op {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Equals reports whether two operations have identical component
// sequences.
func (op Operation) Equals(other Operation) bool {
	if len(op) != len(other) {
		return false
	}
	for i := range op {
		if op[i] != other[i] {
			return false
		}
	}
	return true
}

// ToRaw encodes an Operation back to its wire form.
func (op Operation) ToRaw() []Raw {
	raw := make([]Raw, len(op))
	for i, c := range op {
		raw[i] = toRaw(c)
	}
	return raw
}

// decodeAll resolves every wire atom in raw, stopping at the first
// invalid one. It does not enforce canonical form — that's check's
// job — only that each atom is individually well-formed.
func decodeAll(raw []Raw) (Operation, error) {
	op := make(Operation, 0, len(raw))
	for _, r := range raw {
		c, err := resolve(r)
		if err != nil {
			return nil, err
		}
		op = append(op, c)
	}
	return op, nil
}

// Decode validates raw as canonical and decodes it to an Operation.
// It exists for callers outside this package — an accelerated backend
// sharing Apply/InverseApply's contract — that need to walk an
// operation's components directly instead of going through Apply.
func Decode(raw []Raw) (Operation, error) {
	if !Check(raw) {
		return nil, newValueError("invalid OTs")
	}
	return decodeAll(raw)
}

// Builder constructs an Operation with automatic canonical-form
// merging, mirroring the Appender described in spec.md §4.2: adjacent
// components of the same kind are merged as they're appended, and
// no-op components (Skip(0), Insert(""), Delete("")) are dropped.
//
// Example:
//
//	op := ot.NewBuilder().Skip(5).Insert("hi").Delete("bye").Build()
type Builder struct {
	app appender
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Skip appends a Skip(n) component. A zero or negative n is a no-op.
func (b *Builder) Skip(n int) *Builder {
	if n <= 0 {
		return b
	}
	b.app.append(&Component{Kind: Skip, N: n})
	return b
}

// Insert appends an Insert(s) component. An empty s is a no-op.
func (b *Builder) Insert(s string) *Builder {
	if s == "" {
		return b
	}
	b.app.append(&Component{Kind: Insert, Text: s})
	return b
}

// Delete appends a Delete(s) component. An empty s is a no-op.
func (b *Builder) Delete(s string) *Builder {
	if s == "" {
		return b
	}
	b.app.append(&Component{Kind: Delete, Text: s})
	return b
}

// Build returns the accumulated Operation with any trailing Skip
// trimmed, per the canonical-form invariant. The Builder remains
// usable afterward; Build takes a fresh snapshot.
func (b *Builder) Build() Operation {
	out := make(Operation, len(b.app.out))
	copy(out, b.app.out)
	trim(&out)
	return out
}
