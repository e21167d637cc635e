package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform_ConcurrentInsertAtSamePosition_Left(t *testing.T) {
	out, err := Transform([]Raw{"a"}, []Raw{"b"}, Left)
	assert.NoError(t, err)
	assert.Equal(t, []Raw{"a"}, out)
}

func TestTransform_ConcurrentInsertAtSamePosition_Right(t *testing.T) {
	out, err := Transform([]Raw{"a"}, []Raw{"b"}, Right)
	assert.NoError(t, err)
	assert.Equal(t, []Raw{1, "a"}, out)
}

func TestTransform_InvalidSide(t *testing.T) {
	_, err := Transform([]Raw{"a"}, []Raw{"b"}, Side("up"))
	assert.Error(t, err)
}

func TestTransform_NonCanonicalRejected(t *testing.T) {
	_, err := Transform([]Raw{"a", "b"}, []Raw{"c"}, Left)
	assert.Error(t, err)
}

func TestTransform_Convergence(t *testing.T) {
	doc := "hello world"
	opA := NewBuilder().Skip(6).Delete("world").Insert("there").Build().ToRaw()
	opB := NewBuilder().Skip(11).Insert("!").Build().ToRaw()

	aPrime, err := Transform(opA, opB, Left)
	assert.NoError(t, err)
	bPrime, err := Transform(opB, opA, Right)
	assert.NoError(t, err)

	viaB, err := Apply(doc, opB)
	assert.NoError(t, err)
	viaBThenAPrime, err := Apply(viaB, aPrime)
	assert.NoError(t, err)

	viaA, err := Apply(doc, opA)
	assert.NoError(t, err)
	viaAThenBPrime, err := Apply(viaA, bPrime)
	assert.NoError(t, err)

	assert.Equal(t, viaBThenAPrime, viaAThenBPrime)
}

func TestTransform_SkipOverConcurrentDelete(t *testing.T) {
	// opA deletes the region opB was about to skip past; opB's skip
	// must shrink to absorb the loss.
	opA := []Raw{map[string]interface{}{"d": "abc"}}
	opB := []Raw{3, "x"}

	out, err := Transform(opB, opA, Right)
	assert.NoError(t, err)
	assert.Equal(t, []Raw{"x"}, out)
}
