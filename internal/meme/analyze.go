package meme

import (
	"strings"
	"unicode/utf8"
)

// scanner holds the running state of a single line scan.
type scanner struct {
	body Body
	rest []Fragment

	col int // columns consumed so far
	idx int // codepoints consumed so far

	word    strings.Builder // text since the last boundary
	wordCol int
	wordIdx int
	left    string // word text when the pending face was opened
	face    strings.Builder
	inFace  bool
	openCol int
	openIdx int
	head    *Head
	right   strings.Builder
}

// AnalyzeLine scans a single line of text for memes. line must not contain
// a newline. Every input yields a valid Body; unbalanced parentheses are
// kept as residual text.
func AnalyzeLine(line string) Body {
	s := &scanner{}
	for _, r := range line {
		w := RuneWidth(r)
		s.step(r, w)
		s.col += w
		s.idx++
	}
	s.finish()
	s.body.Rest = RegroupRestText(s.rest)
	s.body.Width = s.col
	tracer().Debugf("line of width %d: %d memes, %d rest fragments",
		s.body.Width, len(s.body.Memes), len(s.body.Rest))
	return s.body
}

// Analyze splits text into lines and analyses each of them.
// A trailing carriage return is removed from every line.
func Analyze(text string) []Body {
	lines := SplitLines(text)
	bodies := make([]Body, len(lines))
	for i, line := range lines {
		bodies[i] = AnalyzeLine(line)
	}
	return bodies
}

// SplitLines splits text at newlines, tolerating CRLF line ends. A final
// newline terminates the last line and does not start an empty one.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func (s *scanner) step(r rune, w int) {
	if s.inFace {
		if r == ')' {
			s.closeFace()
			return
		}
		s.face.WriteRune(r)
		return
	}
	switch r {
	case ' ':
		if s.head != nil {
			s.emitMeme(s.col + w)
		} else {
			s.word.WriteRune(r)
			s.emitWord()
		}
		s.startSegment(s.col+w, s.idx+1)
	case '(':
		if s.head != nil {
			s.emitMeme(s.col)
			s.startSegment(s.col, s.idx)
		}
		s.inFace = true
		s.openCol, s.openIdx = s.col, s.idx
		s.left = s.word.String()
		s.face.Reset()
	default:
		if s.head != nil {
			s.right.WriteRune(r)
		} else {
			s.word.WriteRune(r)
		}
	}
}

// closeFace handles a ')' matching the open '('. A face becomes the pending
// head; anything else goes back into the residual text, split at its last
// space so no word carries a space into a meme.
func (s *scanner) closeFace() {
	s.inFace = false
	text := s.face.String()
	s.face.Reset()
	if !IsFace(text) {
		tracer().Debugf("(%s) at column %d is not a face", text, s.openCol)
		sp := strings.LastIndexByte(text, ' ')
		if sp < 0 {
			s.word.WriteString("(" + text + ")")
			return
		}
		// Spaces inside the group end words like any other space.
		tail := text[sp+1:]
		s.word.WriteString("(" + text[:sp+1])
		s.emitWord()
		s.startSegment(s.col-Width(tail), s.idx-utf8.RuneCountInString(tail))
		s.word.WriteString(tail + ")")
		return
	}
	s.head = &Head{
		StartColumn: s.openCol,
		EndColumn:   s.col,
		Face:        text,
		StartIndex:  s.openIdx,
		EndIndex:    s.idx,
	}
	s.right.Reset()
}

// emitMeme finalizes the pending head. endCol is the column just past the
// unit, the codepoint at the current position belongs to it if it is a
// consumed space.
func (s *scanner) emitMeme(endCol int) {
	endIdx := s.idx
	if endCol > s.col {
		endIdx++
	}
	s.body.Memes = append(s.body.Memes, Meme{
		Head:        *s.head,
		Left:        s.left,
		Right:       s.right.String(),
		StartIndex:  s.wordIdx,
		EndIndex:    endIdx,
		StartColumn: s.wordCol,
		EndColumn:   endCol,
	})
	s.head = nil
	s.left = ""
	s.right.Reset()
}

// emitWord appends the current word to the residual fragments.
func (s *scanner) emitWord() {
	if s.word.Len() == 0 {
		return
	}
	s.rest = append(s.rest, Fragment{Column: s.wordCol, Text: s.word.String()})
}

func (s *scanner) startSegment(col, idx int) {
	s.word.Reset()
	s.wordCol, s.wordIdx = col, idx
}

// finish treats the end of the line as a boundary. An unterminated face is
// returned to the residual text.
func (s *scanner) finish() {
	if s.inFace {
		s.inFace = false
		s.word.WriteString("(" + s.face.String())
		s.face.Reset()
	}
	if s.head != nil {
		s.emitMeme(s.col)
		return
	}
	s.emitWord()
}
