// Package rope implements a binary-tree representation of a string
// for the insert/delete-heavy access pattern an accelerated
// operational-transformation backend needs: an edit builds new nodes
// around shared substrings instead of copying the whole string. The
// tree is never rebalanced, so its depth, and the cost of walking it,
// grows with the number of edits and concatenations that built it.
//
// Rope is immutable: every mutating method returns a new *Rope and
// leaves the receiver untouched, so a Rope is safe to share across
// goroutines without synchronization.
package rope

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rope represents an immutable string as a binary tree of leaves.
// Length is cached in code points (runes), matching the index space
// ot.RuneUnits uses, since the accelerated backend built on top of
// Rope only ever operates under rune indexing.
type Rope struct {
	root   RopeNode
	length int // rune count
	size   int // byte count
}

// RopeNode is a node in the tree: either a LeafNode holding text or
// an InternalNode joining two subtrees.
type RopeNode interface {
	Length() int
	Size() int
	Slice(start, end int) string
	IsLeaf() bool
}

// LeafNode stores a contiguous run of text.
type LeafNode struct {
	text string
}

// InternalNode joins two subtrees, caching the left subtree's extent
// so Length/Size/Slice on the right half never need to touch the left.
type InternalNode struct {
	left, right   RopeNode
	length, size  int // left subtree's rune count, byte count
}

func (n *LeafNode) Length() int { return utf8.RuneCountInString(n.text) }
func (n *LeafNode) Size() int   { return len(n.text) }
func (n *LeafNode) IsLeaf() bool { return true }

func (n *LeafNode) Slice(start, end int) string {
	byteStart := runeOffset(n.text, start)
	byteEnd := byteStart + runeOffset(n.text[byteStart:], end-start)
	return n.text[byteStart:byteEnd]
}

func (n *InternalNode) Length() int  { return n.length + n.right.Length() }
func (n *InternalNode) Size() int    { return n.size + n.right.Size() }
func (n *InternalNode) IsLeaf() bool { return false }

func (n *InternalNode) Slice(start, end int) string {
	if end <= n.length {
		return n.left.Slice(start, end)
	}
	if start >= n.length {
		return n.right.Slice(start-n.length, end-n.length)
	}
	return n.left.Slice(start, n.length) + n.right.Slice(0, end-n.length)
}

// runeOffset returns the byte offset of the n-th rune boundary in s.
func runeOffset(s string, n int) int {
	off := 0
	for i := 0; i < n; i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}

// New builds a Rope from text. An empty string yields Empty().
func New(text string) *Rope {
	if text == "" {
		return Empty()
	}
	return &Rope{root: &LeafNode{text: text}, length: utf8.RuneCountInString(text), size: len(text)}
}

// Empty returns the zero-length Rope.
func Empty() *Rope {
	return &Rope{root: &LeafNode{text: ""}}
}

// Length returns the rope's length in code points.
func (r *Rope) Length() int {
	if r == nil {
		return 0
	}
	return r.length
}

// String renders the rope's full contents.
func (r *Rope) String() string {
	if r == nil || r.length == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(r.size)
	writeNode(&b, r.root)
	return b.String()
}

func writeNode(b *strings.Builder, n RopeNode) {
	if leaf, ok := n.(*LeafNode); ok {
		b.WriteString(leaf.text)
		return
	}
	in := n.(*InternalNode)
	writeNode(b, in.left)
	writeNode(b, in.right)
}

// Slice returns doc[start:end] in rune positions.
func (r *Rope) Slice(start, end int) (string, error) {
	if r == nil {
		if start == 0 && end == 0 {
			return "", nil
		}
		return "", errOutOfBounds("slice", start, end, 0)
	}
	if start < 0 || end > r.length || start > end {
		return "", errOutOfBounds("slice", start, end, r.length)
	}
	if start == end {
		return "", nil
	}
	return r.root.Slice(start, end), nil
}

// CharAt returns the rune at rune position pos.
func (r *Rope) CharAt(pos int) (rune, error) {
	if r == nil || pos < 0 || pos >= r.length {
		return 0, errOutOfBounds("char", pos, pos, r.Length())
	}
	s := r.root.Slice(pos, pos+1)
	ch, _ := utf8.DecodeRuneInString(s)
	return ch, nil
}

func concatNodes(left, right RopeNode) RopeNode {
	if left == nil || left.Length() == 0 {
		if right == nil {
			return &LeafNode{}
		}
		return right
	}
	if right == nil || right.Length() == 0 {
		return left
	}
	return &InternalNode{left: left, right: right, length: left.Length(), size: left.Size()}
}

// insertNode splits a leaf into the (possibly empty) text on either
// side of pos plus a new leaf for text, and rejoins the three with
// concatNodes instead of a three-way string concatenation: leaf.text's
// two halves are plain substring slices (O(1), sharing the original
// backing array, since Go strings are immutable) and concatNodes is
// just a new InternalNode, so a single insert never copies the leaf's
// existing content the way `left + text + right` would.
func insertNode(node RopeNode, pos int, text string) RopeNode {
	if node.Length() == 0 {
		return &LeafNode{text: text}
	}
	if node.IsLeaf() {
		leaf := node.(*LeafNode)
		at := runeOffset(leaf.text, pos)
		left := &LeafNode{text: leaf.text[:at]}
		right := &LeafNode{text: leaf.text[at:]}
		return concatNodes(concatNodes(left, &LeafNode{text: text}), right)
	}
	in := node.(*InternalNode)
	if pos <= in.length {
		newLeft := insertNode(in.left, pos, text)
		return &InternalNode{left: newLeft, right: in.right, length: newLeft.Length(), size: newLeft.Size()}
	}
	newRight := insertNode(in.right, pos-in.length, text)
	return &InternalNode{left: in.left, right: newRight, length: in.length, size: in.size}
}

// deleteNode is insertNode's counterpart: the surviving text on either
// side of [start, end) is sliced off the leaf (O(1), no copy) and
// rejoined with concatNodes rather than `left + right`.
func deleteNode(node RopeNode, start, end int) RopeNode {
	if node.Length() == 0 || start >= end {
		return node
	}
	if node.IsLeaf() {
		leaf := node.(*LeafNode)
		a := runeOffset(leaf.text, start)
		b := a + runeOffset(leaf.text[a:], end-start)
		left := &LeafNode{text: leaf.text[:a]}
		right := &LeafNode{text: leaf.text[b:]}
		return concatNodes(left, right)
	}
	in := node.(*InternalNode)
	if end <= in.length {
		return concatNodes(deleteNode(in.left, start, end), in.right)
	}
	if start >= in.length {
		return concatNodes(in.left, deleteNode(in.right, start-in.length, end-in.length))
	}
	return concatNodes(deleteNode(in.left, start, in.length), deleteNode(in.right, 0, end-in.length))
}

// Insert splices text in at rune position pos and returns a new Rope.
func (r *Rope) Insert(pos int, text string) (*Rope, error) {
	if r == nil {
		if pos != 0 {
			return nil, errOutOfBounds("insert", pos, pos, 0)
		}
		return New(text), nil
	}
	if pos < 0 || pos > r.length {
		return nil, errOutOfBounds("insert", pos, pos, r.length)
	}
	if text == "" {
		return r, nil
	}
	newRoot := insertNode(r.root, pos, text)
	return &Rope{root: newRoot, length: r.length + utf8.RuneCountInString(text), size: r.size + len(text)}, nil
}

// Delete removes [start, end) in rune positions and returns a new Rope.
func (r *Rope) Delete(start, end int) (*Rope, error) {
	if r == nil {
		if start == 0 && end == 0 {
			return r, nil
		}
		return nil, errOutOfBounds("delete", start, end, 0)
	}
	if start < 0 || end > r.length || start > end {
		return nil, errOutOfBounds("delete", start, end, r.length)
	}
	if start == end {
		return r, nil
	}
	newRoot := deleteNode(r.root, start, end)
	removed := end - start
	return &Rope{root: newRoot, length: r.length - removed, size: r.size - len(r.root.Slice(start, end))}, nil
}

// Concat joins r and other into a new Rope.
func (r *Rope) Concat(other *Rope) *Rope {
	if r == nil || r.length == 0 {
		return other
	}
	if other == nil || other.length == 0 {
		return r
	}
	return &Rope{root: concatNodes(r.root, other.root), length: r.length + other.length, size: r.size + other.size}
}

// Equals reports whether r and other hold identical text.
func (r *Rope) Equals(other *Rope) bool {
	return r.String() == other.String()
}

func errOutOfBounds(op string, start, end, length int) error {
	return fmt.Errorf("rope: %s out of bounds: [%d, %d) (length %d)", op, start, end, length)
}
