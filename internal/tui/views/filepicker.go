package views

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/memenhance/internal/meme"
)

// FileSelectedMsg is sent when a text file is selected
type FileSelectedMsg struct {
	Path string
}

// File picker styles
var (
	fpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	fpPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	fpDirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	fpFileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	fpSelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#2d3436"))

	fpHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	fpErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3d5a80"))
)

// TextExtensions are the file types offered for rendering.
var TextExtensions = []string{".txt", ".me", ".mem", ".md", ".log", ".bob"}

// previewLines is the number of lines analysed for the preview pane.
const previewLines = 4

// FileEntry is a directory or text file of the listed directory.
type FileEntry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Preview is the analysis of the first lines of a file.
type Preview struct {
	Path   string
	Lines  []string
	Bodies []meme.Body
	Err    error
}

// Faces returns the number of memes found in the previewed lines.
func (p Preview) Faces() int {
	n := 0
	for _, b := range p.Bodies {
		n += len(b.Memes)
	}
	return n
}

// ListDir lists the subdirectories of dir and the files matching one of
// extensions, directories first, each group sorted case-insensitively.
// Hidden entries are skipped. An empty extensions list matches all files.
func ListDir(dir string, extensions []string) ([]FileEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var entries []FileEntry
	for _, de := range dirEntries {
		if strings.HasPrefix(de.Name(), ".") {
			continue
		}
		if !de.IsDir() && !hasExtension(de.Name(), extensions) {
			continue
		}
		fe := FileEntry{Name: de.Name(), Path: filepath.Join(dir, de.Name()), IsDir: de.IsDir()}
		if info, err := de.Info(); err == nil && !fe.IsDir {
			fe.Size = info.Size()
		}
		entries = append(entries, fe)
	}
	slices.SortFunc(entries, func(a, b FileEntry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return entries, nil
}

func hasExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	return slices.ContainsFunc(extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// LoadPreview analyses the first lines of the file at path.
func LoadPreview(path string) Preview {
	p := Preview{Path: path}
	f, err := os.Open(path)
	if err != nil {
		p.Err = err
		return p
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for len(p.Lines) < previewLines && sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		p.Lines = append(p.Lines, line)
		p.Bodies = append(p.Bodies, meme.AnalyzeLine(line))
	}
	p.Err = sc.Err()
	return p
}

// FilePickerModel lists text files and previews their faces.
type FilePickerModel struct {
	dir        string
	extensions []string
	entries    []FileEntry
	selected   int
	offset     int
	preview    Preview
	err        error

	width  int
	height int
}

// NewFilePickerModel creates a file picker starting in dir. An empty dir
// starts in the working directory, falling back to the home directory.
func NewFilePickerModel(dir string, extensions []string) FilePickerModel {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if dir == "" {
		dir, _ = os.UserHomeDir()
	}
	if dir == "" {
		dir = string(filepath.Separator)
	}
	m := FilePickerModel{extensions: extensions}
	m.chdir(dir)
	return m
}

// Dir returns the directory currently listed.
func (m FilePickerModel) Dir() string {
	return m.dir
}

// Entries returns the entries of the current directory, the parent entry
// ".." included.
func (m FilePickerModel) Entries() []FileEntry {
	return m.entries
}

// Preview returns the preview of the selected file.
func (m FilePickerModel) Preview() Preview {
	return m.preview
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *FilePickerModel) chdir(dir string) {
	entries, err := ListDir(dir, m.extensions)
	if err != nil {
		m.err = err
		return
	}
	m.dir, m.err = dir, nil
	m.entries = nil
	if parent := filepath.Dir(dir); parent != dir {
		m.entries = append(m.entries, FileEntry{Name: "..", Path: parent, IsDir: true})
	}
	m.entries = append(m.entries, entries...)
	m.selected, m.offset = 0, 0
	m.refreshPreview()
}

// move changes the selection by delta entries, clamped to the list.
func (m *FilePickerModel) move(delta int) {
	m.selected = max(0, min(m.selected+delta, len(m.entries)-1))
	visible := m.visibleHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
	m.refreshPreview()
}

func (m *FilePickerModel) refreshPreview() {
	if m.selected >= len(m.entries) || m.entries[m.selected].IsDir {
		m.preview = Preview{}
		return
	}
	if path := m.entries[m.selected].Path; path != m.preview.Path {
		m.preview = LoadPreview(path)
	}
}

func (m FilePickerModel) visibleHeight() int {
	// header, path, preview and help
	return max(m.height-10-previewLines, 5)
}

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "ctrl+d":
		m.move(m.visibleHeight() / 2)
	case "ctrl+u":
		m.move(-m.visibleHeight() / 2)
	case "g":
		m.move(-len(m.entries))
	case "G":
		m.move(len(m.entries))
	case "backspace", "h":
		m.chdir(filepath.Dir(m.dir))
	case "~":
		if home, err := os.UserHomeDir(); err == nil {
			m.chdir(home)
		}
	case "enter", "l", "right":
		if m.selected >= len(m.entries) {
			return m, nil
		}
		entry := m.entries[m.selected]
		if entry.IsDir {
			m.chdir(entry.Path)
			return m, nil
		}
		return m, func() tea.Msg {
			return FileSelectedMsg{Path: entry.Path}
		}
	}
	return m, nil
}

// View renders the file picker.
func (m FilePickerModel) View() string {
	var b strings.Builder
	b.WriteString(fpTitleStyle.Render("Open Text File"))
	b.WriteString("\n")
	b.WriteString(fpPathStyle.Render(m.dir))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(fpErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(separator(m.width))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(fpHelpStyle.Render("  (no text files found)"))
		b.WriteString("\n")
	}
	end := min(m.offset+m.visibleHeight(), len(m.entries))
	for i := m.offset; i < end; i++ {
		e := m.entries[i]
		prefix, style := "  ", fpFileStyle
		if e.IsDir {
			style = fpDirStyle
		}
		if i == m.selected {
			prefix, style = "> ", fpSelectedStyle
		}
		label := e.Name + "/"
		if !e.IsDir {
			label = fmt.Sprintf("%s  %d B", e.Name, e.Size)
		}
		b.WriteString(prefix + style.Render(label) + "\n")
	}
	if len(m.entries) > m.visibleHeight() {
		b.WriteString(fpPathStyle.Render(fmt.Sprintf("  %d/%d ↕", m.selected+1, len(m.entries))))
		b.WriteString("\n")
	}

	b.WriteString(separator(m.width))
	b.WriteString("\n")
	b.WriteString(m.viewPreview())
	b.WriteString(fpHelpStyle.Render("enter: open • backspace: parent • ~: home • esc: menu"))
	return b.String()
}

func (m FilePickerModel) viewPreview() string {
	p := m.preview
	switch {
	case p.Path == "":
		return ""
	case p.Err != nil:
		return fpErrorStyle.Render("Error: "+p.Err.Error()) + "\n"
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render("Preview"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d faces in the first %d lines", p.Faces(), len(p.Lines))))
	b.WriteString("\n")
	for i, line := range p.Lines {
		b.WriteString("  " + Highlight(line, p.Bodies[i], -1) + "\n")
	}
	return b.String()
}

// separator draws a horizontal rule fitting width.
func separator(width int) string {
	return separatorStyle.Render(strings.Repeat("─", max(0, min(width-4, 60))))
}
