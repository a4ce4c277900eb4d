package workspace

import (
	"testing"

	"github.com/dhamidi/javacheck/check"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type notifyRecorder struct {
	methods []string
	params  []any
}

func (r *notifyRecorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			r.methods = append(r.methods, method)
			r.params = append(r.params, params)
		},
	}
}

func (r *notifyRecorder) lastPublish(t *testing.T) protocol.PublishDiagnosticsParams {
	t.Helper()
	if len(r.params) == 0 {
		t.Fatal("no notifications sent")
	}
	last := len(r.params) - 1
	if r.methods[last] != protocol.ServerTextDocumentPublishDiagnostics {
		t.Fatalf("method = %q, want %q", r.methods[last], protocol.ServerTextDocumentPublishDiagnostics)
	}
	params, ok := r.params[last].(protocol.PublishDiagnosticsParams)
	if !ok {
		t.Fatalf("params type = %T, want PublishDiagnosticsParams", r.params[last])
	}
	return params
}

func TestTextDocumentDidOpenPublishesDiagnostics(t *testing.T) {
	ls := NewLSPServer("test")
	ls.workspace = New(t.TempDir())
	rec := &notifyRecorder{}

	uri := protocol.DocumentUri("file:///src/Foo.java")
	ls.textDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "foo bar baz"},
	})

	params := rec.lastPublish(t)
	if params.URI != uri {
		t.Errorf("URI = %q, want %q", params.URI, uri)
	}
	if len(params.Diagnostics) != 1 {
		t.Fatalf("published %d diagnostics, want 1: %+v", len(params.Diagnostics), params.Diagnostics)
	}
	if params.Diagnostics[0].Range.Start.Line != 0 {
		t.Errorf("Line = %d, want 0", params.Diagnostics[0].Range.Start.Line)
	}
}

func TestTextDocumentDidCloseDropsFile(t *testing.T) {
	ls := NewLSPServer("test")
	ls.workspace = New(t.TempDir())
	rec := &notifyRecorder{}

	uri := protocol.DocumentUri("file:///src/Foo.java")
	ls.textDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "foo bar baz"},
	})
	if all := ls.workspace.AllDiagnostics(); len(all) != 1 {
		t.Fatalf("AllDiagnostics before close = %d entries, want 1", len(all))
	}

	ls.textDocumentDidClose(rec.context(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})

	// A closed buffer no longer contributes diagnostics anywhere.
	if ls.workspace.GetFile("/src/Foo.java") != nil {
		t.Errorf("file still tracked after close")
	}
	if all := ls.workspace.AllDiagnostics(); len(all) != 0 {
		t.Errorf("AllDiagnostics after close = %+v, want none", all)
	}

	params := rec.lastPublish(t)
	if len(params.Diagnostics) != 0 {
		t.Errorf("published %d diagnostics on close, want 0", len(params.Diagnostics))
	}
}

func TestUTF16Column(t *testing.T) {
	tests := []struct {
		line string
		want protocol.UInteger
	}{
		{"int x = ", 8},
		{"Straße x", 8},    // two-byte rune, one code unit
		{"\U0001F600x", 3}, // four-byte rune, two code units
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := utf16Column(tt.line, len(tt.line))
			if got != tt.want {
				t.Errorf("utf16Column = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToProtocolDiagnosticNonASCII(t *testing.T) {
	text := "String s = \"Straße\""
	d := check.Diagnostic{
		Line: 1,
		Text: text,
		Span: check.Span{Start: 0, End: len(text)},
	}

	pd := toProtocolDiagnostic(d)

	// ß is two bytes but one UTF-16 code unit, so the end column is one
	// less than the byte length.
	want := protocol.UInteger(len(text) - 1)
	if pd.Range.End.Character != want {
		t.Errorf("End.Character = %d, want %d", pd.Range.End.Character, want)
	}
}
