package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck_Canonical(t *testing.T) {
	assert.True(t, Check([]Raw{2, "ab", map[string]interface{}{"d": "cd"}}))
	assert.True(t, Check([]Raw{}))
	assert.True(t, Check([]Raw{"only insert"}))
}

func TestCheck_RejectsTrailingSkip(t *testing.T) {
	assert.False(t, Check([]Raw{"a", 3}))
}

func TestCheck_RejectsAdjacentSameKind(t *testing.T) {
	assert.False(t, Check([]Raw{"a", "b"}))
	assert.False(t, Check([]Raw{2, 3}))
	assert.False(t, Check([]Raw{map[string]interface{}{"d": "a"}, map[string]interface{}{"d": "b"}}))
}

func TestCheck_RejectsMalformedAtom(t *testing.T) {
	assert.False(t, Check([]Raw{0}))
	assert.False(t, Check([]Raw{""}))
	assert.False(t, Check([]Raw{3.14}))
}

func TestNormalize_MergesAndTrims(t *testing.T) {
	out, err := Normalize([]Raw{3, "a", 5})
	assert.NoError(t, err)
	assert.Equal(t, []Raw{3, "a"}, out)
}

func TestNormalize_MergesAdjacentSameKind(t *testing.T) {
	out, err := Normalize([]Raw{2, 3, "a", "b"})
	assert.NoError(t, err)
	assert.Equal(t, []Raw{5, "ab"}, out)
}

func TestNormalize_DropsNoOps(t *testing.T) {
	// Normalize only operates on already-valid atoms; an empty insert
	// is invalid on its own, so there's nothing to drop there. What it
	// does drop is a redundant trailing skip after merging.
	out, err := Normalize([]Raw{1, 1, 1})
	assert.NoError(t, err)
	assert.Equal(t, []Raw{}, out)
}

func TestNormalize_InvalidAtomFails(t *testing.T) {
	_, err := Normalize([]Raw{0})
	assert.Error(t, err)
}

func TestBuilder_ProducesCanonicalOutput(t *testing.T) {
	op := NewBuilder().Skip(2).Skip(3).Insert("a").Insert("b").Delete("x").Skip(4).Build()
	assert.True(t, Check(op.ToRaw()))
	assert.Equal(t, []Raw{5, "ab", map[string]interface{}{"d": "x"}}, op.ToRaw())
}

func TestBuilder_DropsNoOpArgs(t *testing.T) {
	op := NewBuilder().Skip(0).Insert("").Delete("").Build()
	assert.Equal(t, Operation{}, op)
}
