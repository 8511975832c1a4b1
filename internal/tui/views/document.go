package views

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/memenhance/internal/layout"
	"github.com/f3rmion/memenhance/internal/meme"
)

var (
	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Width(5).
			Align(lipgloss.Right).
			MarginRight(1)

	docPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)
)

// DocumentModel shows a whole text file with its memes highlighted.
type DocumentModel struct {
	path   string
	lines  []string
	result layout.Result
	r      *layout.Renderer

	offset int

	width  int
	height int
}

// NewDocumentModel creates an empty document view.
func NewDocumentModel(r *layout.Renderer) DocumentModel {
	return DocumentModel{r: r}
}

// SetSize updates the view dimensions.
func (m *DocumentModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetDocument replaces the shown text.
func (m *DocumentModel) SetDocument(path, text string) {
	m.path = path
	m.lines = meme.SplitLines(text)
	m.result = m.r.Render(text)
	m.offset = 0
}

// Result returns the rendering of the shown text.
func (m DocumentModel) Result() layout.Result {
	return m.result
}

// Faces returns the number of memes in the document.
func (m DocumentModel) Faces() int {
	n := 0
	for _, b := range m.result.Bodies {
		n += len(b.Memes)
	}
	return n
}

func (m DocumentModel) visibleHeight() int {
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

// Update handles messages.
func (m DocumentModel) Update(msg tea.Msg) (DocumentModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		last := len(m.lines) - m.visibleHeight()
		if last < 0 {
			last = 0
		}
		switch msg.String() {
		case "j", "down":
			if m.offset < last {
				m.offset++
			}
		case "k", "up":
			if m.offset > 0 {
				m.offset--
			}
		case "ctrl+d", "pgdown":
			m.offset = min(m.offset+m.visibleHeight()/2, last)
		case "ctrl+u", "pgup":
			m.offset = max(m.offset-m.visibleHeight()/2, 0)
		case "g":
			m.offset = 0
		case "G":
			m.offset = last
		}
	}
	return m, nil
}

// View renders the document view.
func (m DocumentModel) View() string {
	var b strings.Builder
	b.WriteString(lineTitleStyle.Render("Document"))
	b.WriteString("\n")
	if m.path == "" {
		b.WriteString(valueStyle.Render("No document loaded. Open a text file first."))
		return b.String()
	}
	b.WriteString(docPathStyle.Render(fmt.Sprintf("%s • %d lines • %d faces • %gx%g px",
		filepath.Base(m.path), m.result.Lines, m.Faces(), m.result.Width, m.result.Height)))
	b.WriteString("\n")
	b.WriteString(separator(m.width))
	b.WriteString("\n")

	end := min(m.offset+m.visibleHeight(), len(m.lines))
	for i := m.offset; i < end; i++ {
		b.WriteString(lineNumberStyle.Render(fmt.Sprintf("%d", i+1)))
		b.WriteString(Highlight(m.lines[i], m.result.Bodies[i], -1))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("j/k: scroll • ctrl+d/ctrl+u: page • g/G: top/bottom • esc: menu"))
	return b.String()
}
