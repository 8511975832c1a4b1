package svg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/f3rmion/memenhance/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;&amp;&apos;", Escape(`<a href="x">&'`))
	assert.Equal(t, "( ͡° ͜ʖ ͡°)", Escape("( ͡° ͜ʖ ͡°)"))
}

func TestWriteCircle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCircle(&buf, layout.Circle{CX: 24, CY: 8, R: 16.5}))
	assert.Equal(t, `<circle cx="24" cy="8" r="16.5"/>`, buf.String())
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	txt := layout.Text{
		X: 24, Y: 12, Anchor: layout.Middle,
		Spans: []layout.Span{{Text: "(", Hidden: true}, {Text: ">_<"}, {Text: ")", Hidden: true}},
	}
	require.NoError(t, WriteText(&buf, txt))
	assert.Equal(t,
		`<text x="24" y="12" text-anchor="middle"><tspan class="paren">(</tspan>&gt;_&lt;<tspan class="paren">)</tspan></text>`,
		buf.String())
}

func TestDocument(t *testing.T) {
	s := layout.DefaultSettings()
	res := layout.NewRenderer(s).Render("ヘ( ^_^)ノ ＼(^_^ )Gimme Five\nplain")
	doc := NewDocument(res, s)
	out := doc.String()
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="232" height="48"`))
	assert.Equal(t, 2, strings.Count(out, "<circle "))
	assert.Equal(t, 6, strings.Count(out, "<text "))
	assert.Contains(t, out, "tspan.paren")
	assert.NotContains(t, out, `class="rest"`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	//
	doc.ShowRest = true
	out = doc.String()
	assert.Contains(t, out, `<text class="rest" x="0" y="12" xml:space="preserve">                         Five</text>`)
	assert.Contains(t, out, `<text class="rest" x="0" y="28" xml:space="preserve">plain</text>`)
}

func TestDefaultStyleRestIsMonospace(t *testing.T) {
	i := strings.Index(DefaultStyle, "text.rest {")
	require.GreaterOrEqual(t, i, 0)
	rule := DefaultStyle[i : i+strings.Index(DefaultStyle[i:], "}")]
	assert.Contains(t, rule, "font-family: monospace;")
	assert.Contains(t, rule, "white-space: pre;")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestDocumentWriteError(t *testing.T) {
	doc := NewDocument(layout.NewRenderer(layout.DefaultSettings()).Render("(ツ)"), layout.DefaultSettings())
	_, err := doc.WriteTo(failingWriter{})
	assert.EqualError(t, err, "disk full")
}
