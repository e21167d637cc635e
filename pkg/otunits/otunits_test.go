package otunits

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreseekdev/ottype/pkg/ot"
)

// flagFR is the regional-indicator pair U+1F1EB U+1F1F7 ("FR"), a
// single grapheme cluster spanning two Unicode code points — the
// simplest input that distinguishes a grapheme-aware Units from
// ot.RuneUnits without needing a ZWJ sequence.
const flagFR = "\U0001F1EB\U0001F1F7"

func TestGraphemes_Len(t *testing.T) {
	assert.Equal(t, 5, Graphemes.Len("hello"))
	assert.Equal(t, 1, Graphemes.Len(flagFR))
}

func TestGraphemes_Advance(t *testing.T) {
	doc := "ab" + flagFR + "cd"
	end, ok := Graphemes.Advance(doc, 0, 2)
	assert.True(t, ok)
	assert.Equal(t, "ab", doc[0:end])

	end2, ok := Graphemes.Advance(doc, end, 1)
	assert.True(t, ok)
	assert.Equal(t, flagFR, doc[end:end2])
}

func TestGraphemes_AdvancePastEnd(t *testing.T) {
	_, ok := Graphemes.Advance("ab", 0, 5)
	assert.False(t, ok)
}

func TestApplyWithUnits_NeverSplitsAGraphemeCluster(t *testing.T) {
	doc := "x" + flagFR + "y"

	op := ot.NewBuilder().Skip(1).Delete(flagFR).Insert("Z").Skip(1).Build()

	out, err := ot.ApplyWithUnits(doc, op.ToRaw(), Graphemes)
	assert.NoError(t, err)
	assert.Equal(t, "xZy", out)
}
