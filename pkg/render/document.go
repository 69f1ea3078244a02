package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
)

// DocumentOptions controls the standalone HTML document around a page.
type DocumentOptions struct {
	Title string
	// Zoom scales the page on screen. Zero renders unscaled unless Controls
	// is set. Print output is never scaled.
	Zoom Zoom
	// Controls adds the zoom links and an export link above the page.
	Controls bool
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 0; }
html, body { margin: 0; padding: 0; background: #f1f5f9; }
.rb-sheet { width: 210mm; min-height: 297mm; margin: 24px auto; background: #fff; box-shadow: 0 1px 4px rgba(0,0,0,.15); transform-origin: top center; }
.rb-controls { display: flex; justify-content: center; gap: 12px; padding: 8px; font: 13px sans-serif; }
.rb-line + .rb-line { margin-top: 2px; }
.rb-bullet { padding-left: 1em; text-indent: -1em; }
@media print {
  html, body { background: #fff; }
  .rb-controls { display: none; }
  .rb-sheet { margin: 0; box-shadow: none; transform: none !important; }
}
{{.Style}}
</style>
</head>
<body>
{{- if .Controls}}
<nav class="rb-controls">
<a href="?zoom={{.ZoomOut}}">-</a><span>{{.Percent}}%</span><a href="?zoom={{.ZoomIn}}">+</a>
<a href="?zoom={{.ZoomReset}}">reset</a><a href="export.pdf">PDF</a><button type="button" onclick="window.print()">Print</button>
</nav>
{{- end}}
<div class="rb-sheet"{{if .Scale}} style="{{.Scale}}"{{end}}>{{.Body}}</div>
</body>
</html>
`))

type documentData struct {
	Title     string
	Style     template.CSS
	Body      template.HTML
	Scale     template.CSS
	Controls  bool
	Percent   int
	ZoomIn    string
	ZoomOut   string
	ZoomReset string
}

// Document wraps p into a printable standalone HTML document.
func Document(p Page, opts DocumentOptions) (string, error) {
	title := opts.Title
	if title == "" {
		title = "Resume"
	}
	data := documentData{
		Title:    title,
		Style:    p.Style,
		Body:     p.Body(),
		Controls: opts.Controls,
	}
	zoom := opts.Zoom
	if zoom == 0 && opts.Controls {
		zoom = DefaultZoom
	}
	if zoom != 0 {
		z := ClampZoom(zoom)
		data.Scale = template.CSS("transform: scale(" + formatZoom(z) + ")")
		data.Percent = z.Percent()
		data.ZoomIn = formatZoom(z.In())
		data.ZoomOut = formatZoom(z.Out())
		data.ZoomReset = formatZoom(DefaultZoom)
	}
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return buf.String(), nil
}

func formatZoom(z Zoom) string {
	return strconv.FormatFloat(float64(z), 'f', -1, 64)
}
