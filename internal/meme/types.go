// Package meme detects parenthesized emoticon faces in lines of text.
//
// A line is scanned once from left to right. Every face found is returned
// together with the words glued to its left and right side as a Meme; all
// other text of the line is kept as column-tagged residual fragments, so the
// line can be reassembled without the memes.
package meme

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'memenhance.meme'.
func tracer() tracing.Trace {
	return tracing.Select("memenhance.meme")
}

// Head is a parenthesized face which passed the face classifier.
// Columns are display columns, indices are codepoint positions.
type Head struct {
	StartColumn int    `json:"start_column"` // Column of the opening parenthesis
	EndColumn   int    `json:"end_column"`   // Column of the closing parenthesis
	Face        string `json:"face"`         // Text between the parentheses
	StartIndex  int    `json:"start_index"`  // Codepoint index of '('
	EndIndex    int    `json:"end_index"`    // Codepoint index of ')'
}

// Span returns the number of columns from the opening to the closing
// parenthesis.
func (h Head) Span() int {
	return h.EndColumn - h.StartColumn
}

// Meme is a face together with the text glued to its sides.
// Left and Right never contain a space.
type Meme struct {
	Head        Head   `json:"head"`
	Left        string `json:"left"`         // Text between the last space and '('
	Right       string `json:"right"`        // Text between ')' and the next space
	StartIndex  int    `json:"start_index"`  // First codepoint of the unit
	EndIndex    int    `json:"end_index"`    // One past the last codepoint of the unit
	StartColumn int    `json:"start_column"` // First column occupied by the unit
	EndColumn   int    `json:"end_column"`   // One past the last column, a consumed space included
}

// Fragment is a run of residual text starting at a display column.
type Fragment struct {
	Column int    `json:"column"`
	Text   string `json:"text"`
}

// End returns the column just past the fragment.
func (f Fragment) End() int {
	return f.Column + Width(f.Text)
}

// Body is the analysis result for a single line.
type Body struct {
	Memes []Meme     `json:"memes"` // In line order
	Rest  []Fragment `json:"rest"`  // Residual text, column-ordered and merged
	Width int        `json:"width"` // Display width of the whole line
}

// Faces returns the face texts of all memes of the body.
func (b Body) Faces() []string {
	faces := make([]string, 0, len(b.Memes))
	for _, m := range b.Memes {
		faces = append(faces, m.Head.Face)
	}
	return faces
}
