package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/memenhance/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, layout.DefaultSettings(), cfg.Settings())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.Render.TextWidth = 10
	cfg.Render.ShowRest = true
	cfg.Catalog.Enabled = true
	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("render:\n  text_height: 20\n"), 0644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Render.TextHeight)
	assert.Equal(t, 8.0, cfg.Render.TextWidth)
	assert.Equal(t, "arial", cfg.Render.FontFamily)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("render: [1, 2"), 0644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "parsing config file")
	//
	zero := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zero, []byte("render:\n  text_width: 0\n"), 0644))
	_, err = Load(zero)
	assert.True(t, errors.Is(err, layout.ErrInvalidSettings))
}

func TestCatalogPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("dir", "faces.db"), cfg.CatalogPath("dir"))
	cfg.Catalog.Path = "/tmp/x.db"
	assert.Equal(t, "/tmp/x.db", cfg.CatalogPath("dir"))
}
