// Package layout turns analysed lines into positioned SVG primitives.
//
// Every meme becomes a circle around its face, the face itself centered in
// the circle, and its left and right words anchored at the circle's edges.
// Geometry is derived from display columns and a fixed cell size.
package layout

import (
	"strings"

	"github.com/f3rmion/memenhance/internal/meme"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'memenhance.layout'.
func tracer() tracing.Trace {
	return tracing.Select("memenhance.layout")
}

// HeadCircle returns the circle drawn around a face in row.
func HeadCircle(h meme.Head, row int, s Settings) Circle {
	span := float64(h.Span())
	center := float64(h.StartColumn) + span/2
	return Circle{
		CX: center * s.TextWidth,
		CY: float64(row)*s.TextHeight + s.TextHeight/2,
		R:  span / 2 * s.TextWidth,
	}
}

// LayoutMeme returns the four primitives of a meme in row: the circle, the
// face, the left word and the right word.
func LayoutMeme(m meme.Meme, row int, s Settings) []Primitive {
	c := HeadCircle(m.Head, row, s)
	y := s.baseline(row)
	face := Text{
		X:      c.CX,
		Y:      y,
		Anchor: Middle,
		Spans: []Span{
			{Text: "(", Hidden: true},
			{Text: m.Head.Face},
			{Text: ")", Hidden: true},
		},
	}
	left := Text{
		X:      float64(m.Head.StartColumn) * s.TextWidth,
		Y:      y,
		Anchor: End,
		Spans:  []Span{{Text: m.Left}},
	}
	right := Text{
		X:      float64(m.Head.EndColumn) * s.TextWidth,
		Y:      y,
		Anchor: Start,
		Spans:  []Span{{Text: m.Right}},
	}
	return []Primitive{c, face, left, right}
}

// LayoutLine returns the primitives of all memes of a line, in line order.
func LayoutLine(b meme.Body, row int, s Settings) []Primitive {
	prims := make([]Primitive, 0, 4*len(b.Memes))
	for _, m := range b.Memes {
		prims = append(prims, LayoutMeme(m, row, s)...)
	}
	return prims
}

// Render analyses every line of input and returns the primitives of all
// memes, top to bottom and left to right, together with the residual text
// of all lines.
func Render(input string, s Settings) ([]Primitive, string) {
	res := NewRenderer(s).Render(input)
	return res.Primitives, strings.Join(res.Rest, "\n")
}
