// Package svg serializes layout primitives into an SVG document.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/f3rmion/memenhance/internal/layout"
)

// DefaultStyle is the style block of every document. Circles are filled
// white so they hide the residual text drawn beneath them; hidden spans of a
// face are transparent.
const DefaultStyle = `
    line, path {
      stroke: black;
      stroke-width: 2;
      stroke-opacity: 1;
      fill-opacity: 1;
      stroke-linecap: round;
      stroke-linejoin: miter;
    }
    circle {
      stroke: black;
      stroke-width: 1;
      stroke-opacity: 1;
      fill-opacity: 1;
      stroke-linecap: round;
      stroke-linejoin: miter;
      fill: white;
    }
    tspan.paren {
      fill-opacity: 0;
    }
    text.rest {
      white-space: pre;
      font-family: monospace;
    }
`

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the characters reserved in XML by entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteCircle writes a <circle> element.
func WriteCircle(w io.Writer, c layout.Circle) error {
	_, err := fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s"/>`, num(c.CX), num(c.CY), num(c.R))
	return err
}

// WriteText writes a <text> element. Hidden spans become transparent
// <tspan class="paren"> elements.
func WriteText(w io.Writer, t layout.Text) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<text x="%s" y="%s" text-anchor="%s">`, num(t.X), num(t.Y), t.Anchor)
	for _, sp := range t.Spans {
		if sp.Hidden {
			sb.WriteString(`<tspan class="paren">`)
			sb.WriteString(Escape(sp.Text))
			sb.WriteString(`</tspan>`)
			continue
		}
		sb.WriteString(Escape(sp.Text))
	}
	sb.WriteString(`</text>`)
	_, err := io.WriteString(w, sb.String())
	return err
}

// WritePrimitive writes a circle or a text.
func WritePrimitive(w io.Writer, p layout.Primitive) error {
	switch p := p.(type) {
	case layout.Circle:
		return WriteCircle(w, p)
	case layout.Text:
		return WriteText(w, p)
	}
	return fmt.Errorf("unknown primitive %T", p)
}
