package check

import "strings"

type scan struct {
	file      string
	state     *State
	firstOnly bool
}

type Option func(*scan)

// WithFile stamps the given name on every produced diagnostic.
func WithFile(name string) Option {
	return func(s *scan) {
		s.file = name
	}
}

// WithState continues a scan from previously accumulated state instead of
// starting fresh. The caller keeps ownership of st.
func WithState(st *State) Option {
	return func(s *scan) {
		s.state = st
	}
}

// WithFirstErrorOnly stops the scan at the first invalid line. The default
// is to collect every invalid line.
func WithFirstErrorOnly() Option {
	return func(s *scan) {
		s.firstOnly = true
	}
}

// Validate splits text on newlines and classifies every line in order,
// returning one Diagnostic per invalid line. Unless WithState is given,
// each call starts from a fresh State, so results never depend on earlier
// documents.
func Validate(text string, opts ...Option) []Diagnostic {
	return scanLines(strings.Split(text, "\n"), opts...)
}

// ValidateLines is Validate for callers that already hold the document as
// a line sequence.
func ValidateLines(lines []string, opts ...Option) []Diagnostic {
	return scanLines(lines, opts...)
}

func scanLines(lines []string, opts ...Option) []Diagnostic {
	s := &scan{}
	for _, opt := range opts {
		opt(s)
	}
	if s.state == nil {
		s.state = NewState()
	}

	var diags []Diagnostic
	for i, line := range lines {
		issue := Classify(line, s.state)
		if issue == nil {
			continue
		}
		diags = append(diags, Diagnostic{
			File:       s.file,
			Line:       i + 1,
			Text:       line,
			Span:       issue.Span,
			Suggestion: issue.Suggestion,
		})
		if s.firstOnly {
			break
		}
	}
	return diags
}
