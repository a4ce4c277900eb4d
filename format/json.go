package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/javacheck/check"
)

type JSONEncoder struct {
	w     io.Writer
	diags []check.Diagnostic
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(diags []check.Diagnostic) error {
	e.diags = diags
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	diags := e.diags
	if diags == nil {
		// An empty scan encodes as [], not null.
		diags = []check.Diagnostic{}
	}
	return json.MarshalIndent(diags, "", "  ")
}
