package ottype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreseekdev/ottype/pkg/ot"
)

func TestCheckNormalize_Delegate(t *testing.T) {
	assert.True(t, Check([]ot.Raw{2, "ab"}))

	out, err := Normalize([]ot.Raw{1, 1, "a"})
	assert.NoError(t, err)
	assert.Equal(t, []ot.Raw{2, "a"}, out)
}

func TestApplyInverseApply_SmallDoc(t *testing.T) {
	doc := "hello world"
	op := ot.NewBuilder().Skip(6).Delete("world").Insert("there").Build().ToRaw()

	newDoc, err := Apply(doc, op)
	assert.NoError(t, err)
	assert.Equal(t, "hello there", newDoc)

	recovered, err := InverseApply(newDoc, op)
	assert.NoError(t, err)
	assert.Equal(t, doc, recovered)
}

func TestApplyInverseApply_LargeDocUsesAccel(t *testing.T) {
	doc := strings.Repeat("x", sizeThreshold+1)
	op := ot.NewBuilder().Skip(sizeThreshold + 1).Insert("!").Build().ToRaw()

	assert.True(t, useAccel(doc))

	newDoc, err := Apply(doc, op)
	assert.NoError(t, err)
	assert.Equal(t, doc+"!", newDoc)

	recovered, err := InverseApply(newDoc, op)
	assert.NoError(t, err)
	assert.Equal(t, doc, recovered)
}

func TestUseAccel_ThresholdBoundary(t *testing.T) {
	assert.False(t, useAccel(strings.Repeat("x", sizeThreshold)))
	assert.True(t, useAccel(strings.Repeat("x", sizeThreshold+1)))
}

func TestUseAccel_NoExtensionsOverride(t *testing.T) {
	original := noExtensions
	noExtensions = true
	defer func() { noExtensions = original }()

	assert.False(t, useAccel(strings.Repeat("x", sizeThreshold+1)))
}

func TestTransform_Delegate(t *testing.T) {
	out, err := Transform([]ot.Raw{"a"}, []ot.Raw{"b"}, ot.Left)
	assert.NoError(t, err)
	assert.Equal(t, []ot.Raw{"a"}, out)
}

func TestCompose_Delegate(t *testing.T) {
	op1 := []ot.Raw{"abc"}
	op2 := []ot.Raw{map[string]interface{}{"d": "abc"}, "xyz"}

	composed, err := Compose(op1, op2)
	assert.NoError(t, err)

	out, err := Apply("", composed)
	assert.NoError(t, err)
	assert.Equal(t, "xyz", out)
}

func TestCompose_NoExtensionsUsesCoreDirectly(t *testing.T) {
	original := noExtensions
	noExtensions = true
	defer func() { noExtensions = original }()

	op1 := []ot.Raw{"abc"}
	op2 := []ot.Raw{}

	composed, err := Compose(op1, op2)
	assert.NoError(t, err)
	assert.Equal(t, op1, composed)
}

func TestIsTruthy(t *testing.T) {
	assert.True(t, isTruthy("1"))
	assert.True(t, isTruthy("true"))
	assert.False(t, isTruthy(""))
	assert.False(t, isTruthy("0"))
	assert.False(t, isTruthy("nonsense"))
}
