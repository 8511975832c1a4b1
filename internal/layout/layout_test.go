package layout

import (
	"errors"
	"testing"

	"github.com/f3rmion/memenhance/internal/meme"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadCircle(t *testing.T) {
	s := Settings{TextWidth: 8, TextHeight: 16}
	c := HeadCircle(meme.Head{StartColumn: 1, EndColumn: 5}, 0, s)
	assert.Equal(t, 2*s.TextWidth, c.R)
	assert.Equal(t, 3*s.TextWidth, c.CX)
	assert.Equal(t, 8.0, c.CY)
	//
	c = HeadCircle(meme.Head{StartColumn: 0, EndColumn: 5}, 2, s)
	assert.Equal(t, 20.0, c.CX)
	assert.Equal(t, 20.0, c.R)
	assert.Equal(t, 40.0, c.CY)
}

func TestLayoutMeme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "memenhance.layout")
	defer teardown()
	//
	s := Settings{TextWidth: 10, TextHeight: 20}
	body := meme.AnalyzeLine("ヘ( ^_^)ノ")
	prims := LayoutLine(body, 1, s)
	require.Len(t, prims, 4)
	c, ok := prims[0].(Circle)
	require.True(t, ok)
	assert.Equal(t, Circle{CX: 45, CY: 30, R: 25}, c)
	face := prims[1].(Text)
	assert.Equal(t, Middle, face.Anchor)
	assert.Equal(t, 45.0, face.X)
	assert.Equal(t, 35.0, face.Y)
	assert.Equal(t, []Span{{Text: "(", Hidden: true}, {Text: " ^_^"}, {Text: ")", Hidden: true}}, face.Spans)
	assert.Equal(t, "( ^_^)", face.Content())
	left := prims[2].(Text)
	assert.Equal(t, End, left.Anchor)
	assert.Equal(t, 20.0, left.X)
	assert.Equal(t, "ヘ", left.Content())
	right := prims[3].(Text)
	assert.Equal(t, Start, right.Anchor)
	assert.Equal(t, 70.0, right.X)
	assert.Equal(t, "ノ", right.Content())
}

func TestRender(t *testing.T) {
	input := "( ^_^)ノ\nnothing here\nヘ( ^_^)ノ ＼(^_^ )Gimme Five"
	prims, rest := Render(input, DefaultSettings())
	assert.Len(t, prims, 12)
	assert.Equal(t, "        \nnothing here\n                         Five", rest)
	// circles come line by line
	first := prims[0].(Circle)
	third := prims[8].(Circle)
	assert.Less(t, first.CY, third.CY)
}

func TestRendererDimensions(t *testing.T) {
	r := NewRenderer(Settings{TextWidth: 8, TextHeight: 16})
	res := r.Render("ab\nツツツ\n")
	assert.Equal(t, 2, res.Lines)
	assert.Equal(t, []string{"ab", "ツツツ"}, res.Rest)
	assert.Equal(t, 6, res.Columns)
	assert.Equal(t, 48.0, res.Width)
	assert.Equal(t, 48.0, res.Height)
	assert.Equal(t, res, r.Render("ab\nツツツ"))
	r.SetPadding(0)
	assert.Equal(t, 32.0, r.Render("ab\nツツツ\n").Height)
}

func TestRendererParallel(t *testing.T) {
	var lines string
	for i := 0; i < 50; i++ {
		lines += "The rest of   凸(•̀_•́)凸❤️ ( ͡° ͜ʖ ͡°) \\(°□°)/层∀  the text is here\n"
		lines += "x (x+y) ＼(^_^ )Gimme Five\n"
	}
	seq := NewRenderer(DefaultSettings()).Render(lines)
	r := NewRenderer(DefaultSettings())
	r.SetParallel(true)
	par := r.Render(lines)
	assert.Equal(t, seq, par)
	assert.Len(t, seq.Primitives, 50*4*4)
}

func TestSettingsValidate(t *testing.T) {
	assert.NoError(t, DefaultSettings().Validate())
	err := Settings{TextWidth: 0, TextHeight: 16}.Validate()
	assert.True(t, errors.Is(err, ErrInvalidSettings))
	assert.Error(t, Settings{TextWidth: 8, TextHeight: -1}.Validate())
}

func TestAnchorString(t *testing.T) {
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "middle", Middle.String())
	assert.Equal(t, "end", End.String())
}
