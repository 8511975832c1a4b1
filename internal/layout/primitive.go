package layout

// Anchor mirrors the SVG text-anchor property.
type Anchor int

const (
	Start  Anchor = iota // Text begins at the anchor point
	Middle               // Text is centered on the anchor point
	End                  // Text ends at the anchor point
)

func (a Anchor) String() string {
	switch a {
	case Middle:
		return "middle"
	case End:
		return "end"
	}
	return "start"
}

// Primitive is either a Circle or a Text.
type Primitive interface {
	primitive()
}

// Circle is a circle in pixel coordinates.
type Circle struct {
	CX, CY, R float64
}

// Span is a run of text within a Text. Hidden spans take up space but are
// not visible.
type Span struct {
	Text   string
	Hidden bool
}

// Text is a line of text anchored at a baseline point.
type Text struct {
	X, Y   float64
	Anchor Anchor
	Spans  []Span
}

// Content returns the concatenated text of all spans.
func (t Text) Content() string {
	s := ""
	for _, sp := range t.Spans {
		s += sp.Text
	}
	return s
}

func (Circle) primitive() {}
func (Text) primitive()   {}
