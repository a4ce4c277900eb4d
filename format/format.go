// Package format renders check diagnostics for machine and human
// consumption.
package format

import (
	"encoding"

	"github.com/dhamidi/javacheck/check"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(diags []check.Diagnostic) error
}
