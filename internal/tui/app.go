package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/memenhance/internal/catalog"
	"github.com/f3rmion/memenhance/internal/layout"
	"github.com/f3rmion/memenhance/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewLine ViewType = iota
	ViewDocument
	ViewFilePicker
	ViewFaces
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// DocumentLoadedMsg is sent when a text file has been read
type DocumentLoadedMsg struct {
	Path string
	Text string
	Err  error
}

// AppModel is the main TUI model
type AppModel struct {
	renderer *layout.Renderer
	catalog  *catalog.Catalog // may be nil

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	lineView       views.LineModel
	documentView   views.DocumentModel
	filePickerView views.FilePickerModel
	facesView      views.FacesModel

	err error

	// Help overlay
	showHelp bool
}

// NewApp creates the TUI application. cat may be nil when no face catalog
// is configured.
func NewApp(r *layout.Renderer, cat *catalog.Catalog) AppModel {
	menuItems := []MenuItem{
		{Label: "Line", View: ViewLine, Shortcut: "1"},
		{Label: "Document", View: ViewDocument, Shortcut: "2"},
		{Label: "Open File", View: ViewFilePicker, Shortcut: "3"},
		{Label: "Faces", View: ViewFaces, Shortcut: "4"},
	}

	return AppModel{
		renderer:     r,
		catalog:      cat,
		sidebarWidth: 18,
		currentView:  ViewLine,
		menuItems:    menuItems,

		lineView:       views.NewLineModel(r.Settings()),
		documentView:   views.NewDocumentModel(r),
		filePickerView: views.NewFilePickerModel("", views.TextExtensions),
		facesView:      views.NewFacesModel(cat != nil),
	}
}

// NewAppWithDocument creates the TUI application showing a loaded text.
func NewAppWithDocument(r *layout.Renderer, cat *catalog.Catalog, path, text string) AppModel {
	app := NewApp(r, cat)
	app.documentView.SetDocument(path, text)
	app.currentView = ViewDocument
	app.selectedMenu = 1
	return app
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadFaces())
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Global keys
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		}

		// Sidebar navigation when active; typed keys belong to the views otherwise
		if m.sidebarActive {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1", "2", "3", "4":
				idx := int(msg.String()[0] - '1')
				return m.switchTo(m.menuItems[idx].View)
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right", "tab":
				return m.switchTo(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Update view sizes
		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.lineView.SetSize(contentWidth, contentHeight)
		m.documentView.SetSize(contentWidth, contentHeight)
		m.filePickerView.SetSize(contentWidth, contentHeight)
		m.facesView.SetSize(contentWidth, contentHeight)

		return m, nil

	case views.FileSelectedMsg:
		return m, m.loadDocument(msg.Path)

	case DocumentLoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.documentView.SetDocument(msg.Path, msg.Text)
			m.currentView = ViewDocument
			m.selectedMenu = 1
			return m, m.recordFaces()
		}
		return m, nil

	case views.FacesLoadedMsg:
		m.facesView, _ = m.facesView.Update(msg)
		return m, nil
	}

	// Delegate to active view if not in sidebar mode
	if !m.sidebarActive {
		var cmd tea.Cmd
		switch m.currentView {
		case ViewLine:
			m.lineView, cmd = m.lineView.Update(msg)
		case ViewDocument:
			m.documentView, cmd = m.documentView.Update(msg)
		case ViewFilePicker:
			m.filePickerView, cmd = m.filePickerView.Update(msg)
		case ViewFaces:
			m.facesView, cmd = m.facesView.Update(msg)
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m AppModel) switchTo(v ViewType) (tea.Model, tea.Cmd) {
	m.currentView = v
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	m.sidebarActive = false
	if v == ViewFaces {
		return m, m.loadFaces()
	}
	return m, nil
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	// Render main content based on current view
	var content string
	switch m.currentView {
	case ViewLine:
		content = m.lineView.View()
	case ViewDocument:
		content = m.documentView.View()
	case ViewFilePicker:
		content = m.filePickerView.View()
	case ViewFaces:
		content = m.facesView.View()
	}
	if m.err != nil {
		content += "\n\n" + lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render("Error: "+m.err.Error())
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" (ツ) memes "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	// Spacer
	usedHeight := len(items) + 4 // account for borders and help
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	help := "esc Menu"
	if m.sidebarActive {
		help = "? Help  q Quit"
	}
	items = append(items, SidebarHelpStyle.Render(help))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// loadDocument reads a text file asynchronously
func (m AppModel) loadDocument(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return DocumentLoadedMsg{Path: path, Err: fmt.Errorf("reading %s: %w", path, err)}
		}
		return DocumentLoadedMsg{Path: path, Text: string(data)}
	}
}

// loadFaces queries the catalog asynchronously
func (m AppModel) loadFaces() tea.Cmd {
	if m.catalog == nil {
		return nil
	}
	cat := m.catalog
	return func() tea.Msg {
		entries, err := cat.Top(context.Background(), 50)
		return views.FacesLoadedMsg{Entries: entries, Err: err}
	}
}

// recordFaces adds the faces of the loaded document to the catalog
func (m AppModel) recordFaces() tea.Cmd {
	if m.catalog == nil {
		return nil
	}
	cat := m.catalog
	bodies := m.documentView.Result().Bodies
	return func() tea.Msg {
		for _, b := range bodies {
			if err := cat.Record(context.Background(), b.Memes); err != nil {
				return views.FacesLoadedMsg{Err: err}
			}
		}
		entries, err := cat.Top(context.Background(), 50)
		return views.FacesLoadedMsg{Entries: entries, Err: err}
	}
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render("memenhance") + "\n\n"

	helpText += HelpSectionStyle.Render("Menu") + "\n"
	helpText += HelpKeyStyle.Render("1-4") + HelpDescStyle.Render("Switch views") + "\n"
	helpText += HelpKeyStyle.Render("esc") + HelpDescStyle.Render("Back to menu / quit") + "\n"
	helpText += HelpKeyStyle.Render("?") + HelpDescStyle.Render("Show this help") + "\n"
	helpText += HelpKeyStyle.Render("q") + HelpDescStyle.Render("Quit") + "\n"

	helpText += HelpSectionStyle.Render("Line View") + "\n"
	helpText += HelpKeyStyle.Render("tab") + HelpDescStyle.Render("Select next face") + "\n"
	helpText += HelpKeyStyle.Render("ctrl+y") + HelpDescStyle.Render("Copy SVG to clipboard") + "\n"

	helpText += HelpSectionStyle.Render("Document View") + "\n"
	helpText += HelpKeyStyle.Render("j/k ↑/↓") + HelpDescStyle.Render("Scroll") + "\n"
	helpText += HelpKeyStyle.Render("g/G") + HelpDescStyle.Render("Top/bottom") + "\n"

	helpText += HelpSectionStyle.Render("File Picker") + "\n"
	helpText += HelpKeyStyle.Render("enter") + HelpDescStyle.Render("Select file/enter dir") + "\n"
	helpText += HelpKeyStyle.Render("backspace") + HelpDescStyle.Render("Go to parent dir") + "\n"
	helpText += HelpKeyStyle.Render("~") + HelpDescStyle.Render("Go to home dir") + "\n"

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
