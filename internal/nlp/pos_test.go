package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOSTags(t *testing.T) {
	tags := POSTags()
	assert.Len(t, tags, 19)
	assert.Equal(t, TagADJ, tags[0])
	assert.Equal(t, TagSPACE, tags[18])

	tags[0] = "changed"
	assert.Equal(t, TagADJ, POSTags()[0], "POSTags must return a copy")
}

func TestPOSIndex(t *testing.T) {
	assert.Equal(t, 0, POSIndex(TagADJ))
	assert.Equal(t, 8, POSIndex(TagNOUN))
	assert.Equal(t, 12, POSIndex(TagPROPN))
	assert.Equal(t, -1, POSIndex("noun"))
}

func TestPennToUniversal(t *testing.T) {
	assert.Equal(t, TagNOUN, PennToUniversal("NNS"))
	assert.Equal(t, TagAUX, PennToUniversal("MD"))
	assert.Equal(t, TagX, PennToUniversal("???"))
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, IsAlpha("perché"))
	assert.False(t, IsAlpha(""))
	assert.False(t, IsAlpha("abc1"))
	assert.False(t, IsAlpha("l'"))
}
