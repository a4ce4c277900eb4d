// Package highlight produces syntax highlighting spans for the same Java
// subset that package check validates. It is an independent regex overlay:
// it shares no tokenizer with the checker and attaches no meaning to what
// it colors.
package highlight

import (
	"regexp"
	"strings"
)

type Kind int

const (
	KindNone Kind = iota
	KindKeyword
	KindComment
)

// Span is a half-open byte range of one line, tagged with how to render it.
type Span struct {
	Start int  `json:"start"`
	End   int  `json:"end"`
	Kind  Kind `json:"kind"`
}

var keywords = []string{
	"public", "private", "protected", "class", "interface", "static",
	"void", "int", "String", "boolean", "double", "float", "long",
	"if", "else", "while", "for", "return", "new",
	"System.out.println", "System", "out", "println",
	"main", "throws", "try", "catch", "final",
}

type rule struct {
	pattern *regexp.Regexp
	kind    Kind
}

var rules = buildRules()

func buildRules() []rule {
	var rs []rule
	for _, kw := range keywords {
		rs = append(rs, rule{
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`),
			kind:    KindKeyword,
		})
	}
	// Comment rules come last so they win over keywords inside comments.
	rs = append(rs, rule{regexp.MustCompile(`//[^\n]*`), KindComment})
	rs = append(rs, rule{regexp.MustCompile(`/\*.*\*/`), KindComment})
	return rs
}

// Line returns the highlight spans for one line of source, in order and
// non-overlapping. Later rules repaint earlier ones, so a keyword inside a
// comment renders as comment.
func Line(text string) []Span {
	if text == "" {
		return nil
	}

	kinds := make([]Kind, len(text))
	for _, r := range rules {
		for _, m := range r.pattern.FindAllStringIndex(text, -1) {
			for i := m[0]; i < m[1]; i++ {
				kinds[i] = r.kind
			}
		}
	}

	var spans []Span
	for i := 0; i < len(kinds); {
		if kinds[i] == KindNone {
			i++
			continue
		}
		j := i + 1
		for j < len(kinds) && kinds[j] == kinds[i] {
			j++
		}
		spans = append(spans, Span{Start: i, End: j, Kind: kinds[i]})
		i = j
	}
	return spans
}

// Text highlights a whole buffer, one span slice per line.
func Text(source string) [][]Span {
	lines := strings.Split(source, "\n")
	result := make([][]Span, len(lines))
	for i, line := range lines {
		result[i] = Line(line)
	}
	return result
}
