package views

import (
	"testing"

	"github.com/f3rmion/memenhance/internal/meme"
	"github.com/stretchr/testify/assert"
)

func TestSegments(t *testing.T) {
	line := "hi ヘ( ^_^)ノ ＼(^_^ )Gimme Five"
	segs := Segments(line, meme.AnalyzeLine(line))
	assert.Equal(t, []Segment{
		{Text: "hi ", Kind: SegmentRest},
		{Text: "ヘ", Kind: SegmentWord},
		{Text: "( ^_^)", Kind: SegmentFace},
		{Text: "ノ", Kind: SegmentWord},
		{Text: " ", Kind: SegmentRest},
		{Text: "＼", Kind: SegmentWord},
		{Text: "(^_^ )", Kind: SegmentFace},
		{Text: "Gimme", Kind: SegmentWord},
		{Text: " Five", Kind: SegmentRest},
	}, segs)
	//
	var joined string
	for _, s := range segs {
		joined += s.Text
	}
	assert.Equal(t, line, joined)
}

func TestSegmentsPlain(t *testing.T) {
	assert.Equal(t, []Segment{{Text: "x (x+y)", Kind: SegmentRest}}, Segments("x (x+y)", meme.AnalyzeLine("x (x+y)")))
	assert.Empty(t, Segments("", meme.AnalyzeLine("")))
}

func TestSegmentsConsumedSpace(t *testing.T) {
	line := "(^_^) x"
	segs := Segments(line, meme.AnalyzeLine(line))
	assert.Equal(t, []Segment{
		{Text: "(^_^)", Kind: SegmentFace},
		{Text: " x", Kind: SegmentRest},
	}, segs)
	for _, s := range segs {
		if s.Kind == SegmentWord {
			assert.NotContains(t, s.Text, " ")
		}
	}
}
