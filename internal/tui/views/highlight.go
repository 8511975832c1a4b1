// Package views contains the views of the memenhance TUI.
package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/memenhance/internal/meme"
)

// SegmentKind tells how a part of a line is displayed.
type SegmentKind int

const (
	SegmentRest SegmentKind = iota // Residual text
	SegmentWord                    // Word glued to a face
	SegmentFace                    // The face, parentheses included
)

// Segment is a run of a line with a single display kind.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Meme highlighting styles
var (
	faceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1a1a2e")).
			Background(lipgloss.Color("#ffe66d"))

	faceSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#1a1a2e")).
				Background(lipgloss.Color("#FF6B6B"))

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Underline(true)

	restStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))
)

// Segments splits line into residual text, meme words and faces using the
// codepoint positions of body, which must be the analysis of line.
func Segments(line string, body meme.Body) []Segment {
	runes := []rune(line)
	var segs []Segment
	add := func(from, to int, kind SegmentKind) {
		if from < to {
			segs = append(segs, Segment{Text: string(runes[from:to]), Kind: kind})
		}
	}
	pos := 0
	for _, m := range body.Memes {
		add(pos, m.StartIndex, SegmentRest)
		add(m.StartIndex, m.Head.StartIndex, SegmentWord)
		add(m.Head.StartIndex, m.Head.EndIndex+1, SegmentFace)
		end := m.EndIndex
		if end > m.Head.EndIndex+1 && runes[end-1] == ' ' {
			end-- // the consumed space is not part of the right word
		}
		add(m.Head.EndIndex+1, end, SegmentWord)
		pos = end
	}
	add(pos, len(runes), SegmentRest)
	return segs
}

// Highlight renders line with its memes emphasized. The face of the meme
// with index selected is drawn in a different color; pass -1 for none.
func Highlight(line string, body meme.Body, selected int) string {
	var b strings.Builder
	face := -1
	for _, s := range Segments(line, body) {
		switch s.Kind {
		case SegmentFace:
			face++
			if face == selected {
				b.WriteString(faceSelectedStyle.Render(s.Text))
			} else {
				b.WriteString(faceStyle.Render(s.Text))
			}
		case SegmentWord:
			b.WriteString(wordStyle.Render(s.Text))
		default:
			b.WriteString(restStyle.Render(s.Text))
		}
	}
	return b.String()
}
