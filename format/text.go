package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/javacheck/check"
)

// TextEncoder writes one tab-separated line per diagnostic:
// file, line number, span, line text, suggestion. Fields without a value
// render as "-".
type TextEncoder struct {
	w     io.Writer
	diags []check.Diagnostic
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(diags []check.Diagnostic) error {
	e.diags = diags
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, d := range e.diags {
		file := d.File
		if file == "" {
			file = "-"
		}
		suggestion := d.Suggestion
		if suggestion == "" {
			suggestion = "-"
		}
		fmt.Fprintf(&sb, "%s\t%d\t%d:%d\t%s\t%s\n",
			file,
			d.Line,
			d.Span.Start,
			d.Span.End,
			d.Text,
			suggestion,
		)
	}
	return []byte(sb.String()), nil
}
