package highlight

import (
	"html"
	"strings"
)

// CSS class names used by the web UI's stylesheet.
var htmlClasses = map[Kind]string{
	KindKeyword: "hl-keyword",
	KindComment: "hl-comment",
}

// LineHTML renders one line as HTML, wrapping highlighted regions in
// class-tagged spans and escaping everything.
func LineHTML(text string) string {
	var sb strings.Builder
	pos := 0
	for _, span := range Line(text) {
		sb.WriteString(html.EscapeString(text[pos:span.Start]))
		sb.WriteString(`<span class="` + htmlClasses[span.Kind] + `">`)
		sb.WriteString(html.EscapeString(text[span.Start:span.End]))
		sb.WriteString(`</span>`)
		pos = span.End
	}
	sb.WriteString(html.EscapeString(text[pos:]))
	return sb.String()
}

// TextHTML renders a whole buffer as HTML, one line per element of the
// returned slice.
func TextHTML(source string) []string {
	lines := strings.Split(source, "\n")
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = LineHTML(line)
	}
	return result
}
