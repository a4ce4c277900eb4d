package check

// Diagnostic ties an Issue to its position in a document. Line numbers are
// 1-based to match what editors display.
type Diagnostic struct {
	File       string `json:"file,omitempty"`
	Line       int    `json:"line"`
	Text       string `json:"text"`
	Span       Span   `json:"span"`
	Suggestion string `json:"suggestion,omitempty"`
}
