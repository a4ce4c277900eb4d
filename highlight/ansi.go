package highlight

import (
	"strings"

	"github.com/fatih/color"
)

var ansiColors = map[Kind]*color.Color{
	KindKeyword: color.New(color.FgBlue, color.Bold),
	KindComment: color.New(color.FgGreen),
}

// LineANSI renders one line with ANSI escape sequences for terminals.
func LineANSI(text string) string {
	var sb strings.Builder
	pos := 0
	for _, span := range Line(text) {
		sb.WriteString(text[pos:span.Start])
		sb.WriteString(ansiColors[span.Kind].Sprint(text[span.Start:span.End]))
		pos = span.End
	}
	sb.WriteString(text[pos:])
	return sb.String()
}

// TextANSI renders a whole buffer for terminal output, preserving line
// boundaries.
func TextANSI(source string) string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = LineANSI(line)
	}
	return strings.Join(lines, "\n")
}
