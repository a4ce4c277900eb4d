// Package check validates a restricted subset of Java source one line at a
// time. It recognizes a fixed set of line shapes (class headers, method
// headers, control structures, simple statements, lone braces) with regular
// expressions and tracks brace nesting across a scan; it is deliberately not
// a parser.
package check

import (
	"regexp"
	"strings"
)

// State carries the scan position between successive Classify calls. A
// fresh State must be used for every independent scan; sharing one State
// across documents or concurrent scans produces wrong results.
type State struct {
	// BlockLevel counts unclosed `{` lines. Never negative.
	BlockLevel int
	// InClass is set once a class header line has been seen.
	InClass bool
}

func NewState() *State {
	return &State{}
}

// Reset returns the state to the start-of-document position.
func (st *State) Reset() {
	st.BlockLevel = 0
	st.InClass = false
}

// Span is a half-open byte range within a single line.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Issue reports that a line matched none of the recognized shapes.
type Issue struct {
	Span       Span
	Suggestion string
}

// SuggestionText is the fixed suggestion attached to every Issue. The
// checker has no idea what the author meant, so there is exactly one.
const SuggestionText = "Expected a valid Java statement"

var (
	commentPattern = regexp.MustCompile(`//.*$|/\*.*\*/`)

	classPattern      = regexp.MustCompile(`^(public|private|protected)?\s*class\s+\w+\s*(\{)?$`)
	methodPattern     = regexp.MustCompile(`^(public|private|protected)?\s*(static)?\s*(void|int|String|boolean)\s+\w+\s*\([^)]*\)\s*\{?$`)
	mainMethodPattern = regexp.MustCompile(`^public\s+static\s+void\s+main\s*\(\s*String\s*\[\]\s*\w+\s*\)\s*\{?$`)

	controlPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(if|while|for)\s*\(\s*[^)]+\s*\)\s*\{?$`),
		regexp.MustCompile(`^(System\.out\.println\s*\(\s*("[^"]*"|\w+)\s*\);)$`),
	}

	variablePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(int|String|boolean|double|float|long)\s+\w+\s*(=\s*[^;]+)?;$`),
		regexp.MustCompile(`^[a-zA-Z_]\w*\s*=\s*[^;]+;$`),
	}
)

// Classify inspects one physical line under the given state and reports nil
// if the line is acceptable, or an Issue spanning the whole untrimmed line
// otherwise. Brace lines and class headers mutate st.
//
// Statements and control structures are only accepted at BlockLevel > 0:
// a bare `x = 5;` at the top level is an error, the same line inside a body
// is fine. That gate is the whole extent of scope tracking.
func Classify(line string, st *State) *Issue {
	clean := strings.TrimSpace(commentPattern.ReplaceAllString(line, ""))

	if clean == "" {
		return nil
	}

	switch clean {
	case "{":
		st.BlockLevel++
		return nil
	case "}":
		if st.BlockLevel > 0 {
			st.BlockLevel--
		}
		return nil
	}

	if classPattern.MatchString(clean) {
		st.InClass = true
		return nil
	}

	if mainMethodPattern.MatchString(clean) || methodPattern.MatchString(clean) {
		return nil
	}

	if st.BlockLevel > 0 {
		for _, p := range controlPatterns {
			if p.MatchString(clean) {
				return nil
			}
		}
		for _, p := range variablePatterns {
			if p.MatchString(clean) {
				return nil
			}
		}
	}

	return &Issue{
		Span:       Span{Start: 0, End: len(line)},
		Suggestion: SuggestionText,
	}
}
