package meme

import "github.com/mattn/go-runewidth"

// cells is the width condition used for all column accounting. It is fixed
// to narrow East Asian ambiguous characters so results do not depend on the
// locale of the process.
var cells = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// RuneWidth returns the number of columns r occupies: 0 for combining and
// zero-width marks, 2 for wide glyphs and 1 otherwise.
func RuneWidth(r rune) int {
	return cells.RuneWidth(r)
}

// Width returns the display width of s as the sum of its codepoint widths.
//
// runewidth.StringWidth measures grapheme clusters, which would disagree
// with the per-codepoint scan of AnalyzeLine.
func Width(s string) int {
	w := 0
	for _, r := range s {
		w += cells.RuneWidth(r)
	}
	return w
}
