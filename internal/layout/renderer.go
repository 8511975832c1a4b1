package layout

import (
	"github.com/f3rmion/memenhance/internal/meme"
	"github.com/sourcegraph/conc/iter"
)

// Result is the rendering of a multi-line text.
type Result struct {
	Primitives []Primitive
	Rest       []string // Residual text per line
	Bodies     []meme.Body
	Columns    int // Width of the widest line
	Lines      int
	Width      float64 // Document width in pixels
	Height     float64 // Document height in pixels
}

// Renderer lays out multi-line text.
type Renderer struct {
	settings Settings
	padding  int
	parallel bool
}

// NewRenderer creates a renderer for the given cell size with one line of
// padding below the text.
func NewRenderer(s Settings) *Renderer {
	return &Renderer{settings: s, padding: 1}
}

// SetPadding sets the number of empty rows added to the document height.
func (r *Renderer) SetPadding(rows int) {
	if rows < 0 {
		rows = 0
	}
	r.padding = rows
}

// SetParallel switches analysis of lines to run concurrently. The result
// is the same as for sequential rendering.
func (r *Renderer) SetParallel(parallel bool) {
	r.parallel = parallel
}

// Settings returns the cell size of the renderer.
func (r *Renderer) Settings() Settings {
	return r.settings
}

type renderedLine struct {
	body  meme.Body
	prims []Primitive
	rest  string
}

// Render analyses and lays out every line of input.
func (r *Renderer) Render(input string) Result {
	lines := meme.SplitLines(input)
	var rendered []renderedLine
	if r.parallel {
		rendered = iter.Map(indexed(lines), func(l *numberedLine) renderedLine {
			return r.renderLine(l.text, l.row)
		})
	} else {
		rendered = make([]renderedLine, len(lines))
		for i, l := range lines {
			rendered[i] = r.renderLine(l, i)
		}
	}
	res := Result{Lines: len(lines)}
	for _, rl := range rendered {
		res.Primitives = append(res.Primitives, rl.prims...)
		res.Rest = append(res.Rest, rl.rest)
		res.Bodies = append(res.Bodies, rl.body)
		if rl.body.Width > res.Columns {
			res.Columns = rl.body.Width
		}
	}
	res.Width = float64(res.Columns) * r.settings.TextWidth
	res.Height = float64(res.Lines+r.padding) * r.settings.TextHeight
	tracer().Debugf("rendered %d lines, %d primitives, %gx%g px",
		res.Lines, len(res.Primitives), res.Width, res.Height)
	return res
}

func (r *Renderer) renderLine(line string, row int) renderedLine {
	body := meme.AnalyzeLine(line)
	return renderedLine{
		body:  body,
		prims: LayoutLine(body, row, r.settings),
		rest:  meme.UnifyRestText(body),
	}
}

type numberedLine struct {
	row  int
	text string
}

func indexed(lines []string) []numberedLine {
	nl := make([]numberedLine, len(lines))
	for i, l := range lines {
		nl[i] = numberedLine{row: i, text: l}
	}
	return nl
}
