package page

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWithFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Data{Source: "a <b> (ツ)", SVGFile: "emoji.svg"}))
	out := buf.String()
	assert.Contains(t, out, "<title>memenhance</title>")
	assert.Contains(t, out, "<pre>a &lt;b&gt; (ツ)</pre>")
	assert.Contains(t, out, `<img src="emoji.svg" alt="memenhance"/>`)
}

func TestWriteInline(t *testing.T) {
	var buf bytes.Buffer
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><circle cx="1" cy="2" r="3"/></svg>`
	require.NoError(t, Write(&buf, Data{Title: "faces", SVG: svg, SVGFile: "ignored.svg"}))
	out := buf.String()
	assert.Contains(t, out, svg)
	assert.NotContains(t, out, "ignored.svg")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteError(t *testing.T) {
	err := Write(failingWriter{}, Data{Source: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing page template")
}
