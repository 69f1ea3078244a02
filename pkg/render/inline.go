package render

import (
	"html/template"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Span is a run of text, emphasized or not.
type Span struct {
	Text string
	Bold bool
}

// Line is one line of free text. Bullet lines keep their original glyph.
type Line struct {
	Bullet bool
	Glyph  string
	Spans  []Span
}

var boldPattern = regexp.MustCompile(`\*\*[^*]+\*\*`)

// ParseBold splits text on **bold** spans. Plain runs between, before and
// after the matches are kept even when empty; unmatched or empty markers
// stay literal. Nesting is not supported.
func ParseBold(text string) []Span {
	if text == "" {
		return nil
	}
	var spans []Span
	last := 0
	for _, m := range boldPattern.FindAllStringIndex(text, -1) {
		spans = append(spans,
			Span{Text: text[last:m[0]]},
			Span{Text: text[m[0]+2 : m[1]-2], Bold: true},
		)
		last = m[1]
	}
	return append(spans, Span{Text: text[last:]})
}

// ParseLines splits free text into lines and detects bullet lines: a line
// whose trimmed form starts with •, - or a single *.
func ParseLines(text string) []Line {
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		trimmed := strings.TrimSpace(l)
		if glyph, size := bulletGlyph(trimmed); size > 0 {
			lines = append(lines, Line{
				Bullet: true,
				Glyph:  glyph,
				Spans:  ParseBold(strings.TrimSpace(trimmed[size:])),
			})
			continue
		}
		lines = append(lines, Line{Spans: ParseBold(l)})
	}
	return lines
}

// bulletGlyph reports the bullet a line starts with. A leading "**" is
// deliberately not a "*" bullet: it opens a bold span, so a line such as
// "**Lead** engineer" renders bold instead of losing an asterisk.
func bulletGlyph(trimmed string) (string, int) {
	r, size := utf8.DecodeRuneInString(trimmed)
	switch r {
	case '•', '-':
		return string(r), size
	case '*':
		if strings.HasPrefix(trimmed, "**") {
			return "", 0
		}
		return string(r), size
	}
	return "", 0
}

// FormatText renders free text as HTML lines with hanging-indent bullets.
func FormatText(text string) template.HTML {
	var b strings.Builder
	for _, line := range ParseLines(text) {
		if line.Bullet {
			b.WriteString(`<div class="rb-line rb-bullet">`)
			b.WriteString(template.HTMLEscapeString(line.Glyph))
			b.WriteString(" ")
		} else {
			b.WriteString(`<div class="rb-line">`)
		}
		writeSpans(&b, line.Spans)
		b.WriteString("</div>")
	}
	return template.HTML(b.String())
}

func writeSpans(b *strings.Builder, spans []Span) {
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if s.Bold {
			b.WriteString("<strong>")
			b.WriteString(template.HTMLEscapeString(s.Text))
			b.WriteString("</strong>")
			continue
		}
		b.WriteString(template.HTMLEscapeString(s.Text))
	}
}
