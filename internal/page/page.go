// Package page embeds a rendered SVG and its source text in an HTML page.
package page

import (
	"fmt"
	"html/template"
	"io"
)

// Data fills the page template. Either SVGFile or SVG should be set; an
// inline SVG takes precedence.
type Data struct {
	Title   string
	Source  string // Text shown in a <pre> block
	SVGFile string // Path of an SVG file referenced by <img>
	SVG     string // Serialized SVG document, inlined
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<style>
  .meme { display: flex; gap: 2em; align-items: flex-start; }
  pre { font-family: monospace; }
</style>
</head>
<body>
<div class="meme">
<pre>{{.Source}}</pre>
{{- if .SVG}}
<div class="svg">{{inline .SVG}}</div>
{{- else if .SVGFile}}
<img src="{{.SVGFile}}" alt="{{.Title}}"/>
{{- end}}
</div>
</body>
</html>
`

var tmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	// inline marks documents produced by package svg as safe; their text
	// content is escaped during serialization.
	"inline": func(s string) template.HTML { return template.HTML(s) },
}).Parse(pageTemplate))

// Write renders the page to w.
func Write(w io.Writer, d Data) error {
	if d.Title == "" {
		d.Title = "memenhance"
	}
	if err := tmpl.Execute(w, d); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}
