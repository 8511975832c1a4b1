package views

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	write := func(name, text string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0644))
	}
	write("b.txt", "hi (^_^)/ there\nplain\r\n(x_x) (T_T)\n")
	write("A.md", "no faces")
	write("image.png", "")
	write(".hidden.txt", "")
	return dir
}

func TestListDir(t *testing.T) {
	dir := makeTree(t)
	entries, err := ListDir(dir, TextExtensions)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"sub", "A.md", "b.txt"}, names)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, int64(8), entries[1].Size)
	//
	all, err := ListDir(dir, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	//
	_, err = ListDir(filepath.Join(dir, "missing"), nil)
	assert.Error(t, err)
}

func TestLoadPreview(t *testing.T) {
	dir := makeTree(t)
	p := LoadPreview(filepath.Join(dir, "b.txt"))
	require.NoError(t, p.Err)
	assert.Equal(t, []string{"hi (^_^)/ there", "plain", "(x_x) (T_T)"}, p.Lines)
	assert.Equal(t, 3, p.Faces())
}

func TestFilePickerNavigation(t *testing.T) {
	dir := makeTree(t)
	m := NewFilePickerModel(dir, TextExtensions)
	m.SetSize(80, 40)
	assert.Equal(t, dir, m.Dir())
	require.Len(t, m.Entries(), 4) // "..", sub, A.md, b.txt
	assert.Equal(t, "..", m.Entries()[0].Name)
	//
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Equal(t, filepath.Join(dir, "b.txt"), m.Preview().Path)
	assert.Contains(t, m.View(), "3 faces")
	//
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, FileSelectedMsg{Path: filepath.Join(dir, "b.txt")}, cmd())
	//
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, filepath.Join(dir, "sub"), m.Dir())
	//
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, dir, m.Dir())
}
