package svg

import (
	"bytes"
	"fmt"
	"io"

	"github.com/f3rmion/memenhance/internal/layout"
)

// Document is a complete SVG image.
type Document struct {
	Width      float64
	Height     float64
	FontFamily string
	FontSize   float64
	Style      string
	Primitives []layout.Primitive

	// Rest holds the residual text of each line. It is drawn beneath the
	// primitives when ShowRest is set.
	Rest       []string
	ShowRest   bool
	TextHeight float64 // Row height used to place residual text
}

// NewDocument creates a document from a rendering result.
func NewDocument(res layout.Result, s layout.Settings) *Document {
	return &Document{
		Width:      res.Width,
		Height:     res.Height,
		FontFamily: "arial",
		FontSize:   14,
		Style:      DefaultStyle,
		Primitives: res.Primitives,
		Rest:       res.Rest,
		TextHeight: s.TextHeight,
	}
}

// WriteTo writes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	fmt.Fprintf(cw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" font-family="%s" font-size="%s">`,
		num(d.Width), num(d.Height), num(d.Width), num(d.Height), Escape(d.FontFamily), num(d.FontSize))
	io.WriteString(cw, "\n<style>")
	io.WriteString(cw, d.Style)
	io.WriteString(cw, "</style>\n")
	if d.ShowRest {
		for row, line := range d.Rest {
			if line == "" {
				continue
			}
			y := float64(row)*d.TextHeight + d.TextHeight*3/4
			fmt.Fprintf(cw, `<text class="rest" x="0" y="%s" xml:space="preserve">%s</text>`, num(y), Escape(line))
			io.WriteString(cw, "\n")
		}
	}
	for _, p := range d.Primitives {
		if err := WritePrimitive(cw, p); err != nil {
			return cw.n, err
		}
		io.WriteString(cw, "\n")
	}
	io.WriteString(cw, "</svg>\n")
	return cw.n, cw.err
}

// String returns the serialized document.
func (d *Document) String() string {
	var buf bytes.Buffer
	d.WriteTo(&buf)
	return buf.String()
}

// countingWriter remembers the first error and the number of bytes written.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
