package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/memenhance/internal/catalog"
)

var countStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#a8e6cf")).
	Bold(true).
	Width(6).
	Align(lipgloss.Right).
	MarginRight(2)

// FacesLoadedMsg carries the catalog entries to show.
type FacesLoadedMsg struct {
	Entries []catalog.Entry
	Err     error
}

// FacesModel lists the most frequent faces of the catalog.
type FacesModel struct {
	entries []catalog.Entry
	enabled bool
	err     error

	width  int
	height int
}

// NewFacesModel creates the faces view. enabled tells whether a catalog is
// configured at all.
func NewFacesModel(enabled bool) FacesModel {
	return FacesModel{enabled: enabled}
}

// SetSize updates the view dimensions.
func (m *FacesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m FacesModel) Update(msg tea.Msg) (FacesModel, tea.Cmd) {
	if msg, ok := msg.(FacesLoadedMsg); ok {
		m.entries, m.err = msg.Entries, msg.Err
	}
	return m, nil
}

// View renders the faces view.
func (m FacesModel) View() string {
	var b strings.Builder
	b.WriteString(lineTitleStyle.Render("Faces"))
	b.WriteString("\n")
	switch {
	case !m.enabled:
		b.WriteString(valueStyle.Render("The face catalog is disabled. Set catalog.enabled in config.yaml."))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case len(m.entries) == 0:
		b.WriteString(valueStyle.Render("No faces recorded yet."))
	default:
		for _, e := range m.entries {
			b.WriteString(countStyle.Render(fmt.Sprintf("%d", e.Count)))
			b.WriteString(faceStyle.Render("(" + e.Face + ")"))
			b.WriteString("  ")
			b.WriteString(docPathStyle.Render(e.Sample))
			b.WriteString("\n")
		}
	}
	return b.String()
}
