package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/memenhance/internal/clipboard"
	"github.com/f3rmion/memenhance/internal/layout"
	"github.com/f3rmion/memenhance/internal/meme"
	"github.com/f3rmion/memenhance/internal/svg"
	"github.com/f3rmion/memenhance/internal/tui/bigchar"
)

// Line view styles
var (
	lineTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1)

	bigFaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)
)

// clearCopiedMsg hides the clipboard notice.
type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// LineModel analyses a single line while it is typed.
type LineModel struct {
	input    textinput.Model
	settings layout.Settings

	body     meme.Body
	selected int

	copied bool
	err    error

	width  int
	height int
}

// NewLineModel creates the line view.
func NewLineModel(s layout.Settings) LineModel {
	ti := textinput.New()
	ti.Placeholder = "Type a line with faces, e.g. ヘ( ^_^)ノ hi"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))
	return LineModel{input: ti, settings: s}
}

// SetSize updates the view dimensions.
func (m *LineModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 10 {
		m.input.Width = width - 10
	}
}

// SetValue replaces the line and analyses it.
func (m *LineModel) SetValue(line string) {
	m.input.SetValue(line)
	m.analyze()
}

// Body returns the analysis of the current line.
func (m LineModel) Body() meme.Body {
	return m.body
}

// Selected returns the index of the selected meme.
func (m LineModel) Selected() int {
	return m.selected
}

func (m *LineModel) analyze() {
	m.body = meme.AnalyzeLine(m.input.Value())
	if m.selected >= len(m.body.Memes) {
		m.selected = 0
	}
}

// SVG returns the SVG document for the current line.
func (m LineModel) SVG() string {
	res := layout.NewRenderer(m.settings).Render(m.input.Value())
	return svg.NewDocument(res, m.settings).String()
}

// Update handles messages.
func (m LineModel) Update(msg tea.Msg) (LineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if n := len(m.body.Memes); n > 0 {
				m.selected = (m.selected + 1) % n
			}
			return m, nil
		case "shift+tab":
			if n := len(m.body.Memes); n > 0 {
				m.selected = (m.selected - 1 + n) % n
			}
			return m, nil
		case "ctrl+y":
			m.err = clipboard.Write(m.SVG())
			if m.err == nil {
				m.copied = true
				return m, clearCopiedAfter(2 * time.Second)
			}
			return m, nil
		}
	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.analyze()
	return m, cmd
}

// View renders the line view.
func (m LineModel) View() string {
	var b strings.Builder
	b.WriteString(lineTitleStyle.Render("Line"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	line := m.input.Value()
	if line == "" {
		b.WriteString(helpStyle.Render("tab: next face • ctrl+y: copy SVG • esc: menu"))
		return b.String()
	}

	b.WriteString(boxStyle.Render(Highlight(line, m.body, m.selected)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Rest") + valueStyle.Render("│"+meme.UnifyRestText(m.body)+"│"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Width") + valueStyle.Render(fmt.Sprintf("%d columns", m.body.Width)))
	b.WriteString("\n\n")

	if len(m.body.Memes) == 0 {
		b.WriteString(valueStyle.Render("No faces found."))
	} else {
		for i, mm := range m.body.Memes {
			marker := "  "
			if i == m.selected {
				marker = "> "
			}
			c := layout.HeadCircle(mm.Head, 0, m.settings)
			b.WriteString(marker)
			b.WriteString(valueStyle.Render(fmt.Sprintf("%s(%s)%s  cols %d-%d  circle cx=%g r=%g",
				mm.Left, mm.Head.Face, mm.Right, mm.Head.StartColumn, mm.Head.EndColumn, c.CX, c.R)))
			b.WriteString("\n")
		}
		if big := bigchar.GetCached(m.body.Memes[m.selected].Head.Face, 40, 8); big != "" {
			b.WriteString("\n")
			b.WriteString(bigFaceStyle.Render(big))
			b.WriteString("\n")
		}
	}

	if m.copied {
		b.WriteString("\n")
		b.WriteString(copiedStyle.Render("SVG copied to clipboard"))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next face • ctrl+y: copy SVG • esc: menu"))
	return b.String()
}
