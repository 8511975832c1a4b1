package meme

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestIsFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "memenhance.meme")
	defer teardown()
	//
	faces := []string{" ͡° ͜ʖ ͡°", "⌐■_■", "ツ", "-_-", "^_^", "x_x", "•̀_•́", "°□°", " ^_^", "^_^ "}
	for _, f := range faces {
		assert.True(t, IsFace(f), "expected %q to be a face", f)
	}
	plain := []string{"+", "x+y", "x^2*y^2", "x^2 * y^2", "     ", "not a meme in space", "", "x", "a, b"}
	for _, p := range plain {
		assert.False(t, IsFace(p), "expected %q not to be a face", p)
	}
}

func TestIsFaceWidthCap(t *testing.T) {
	assert.True(t, IsFace("ツツツツツ"))   // 10 columns
	assert.False(t, IsFace("ツツツツツツ")) // 12 columns
	assert.False(t, IsFace("-_-_-_-_-_-"))
}

func TestIsExpression(t *testing.T) {
	assert.True(t, IsExpression("x^2 + y^2 = z^2"))
	assert.True(t, IsExpression("a|b & !c, 3.5 % 2"))
	assert.True(t, IsExpression(""))
	assert.False(t, IsExpression("x_x"))
	assert.False(t, IsExpression("o.O;"))
	assert.False(t, IsExpression(">_<"))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 1, RuneWidth('a'))
	assert.Equal(t, 2, RuneWidth('ツ'))
	assert.Equal(t, 2, RuneWidth('凸'))
	assert.Equal(t, 0, RuneWidth('͡'))
	assert.Equal(t, 6, Width(" ͡° ͜ʖ ͡°"))
	assert.Equal(t, 0, Width(""))
}
