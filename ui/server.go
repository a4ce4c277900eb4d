// Package ui serves the browser-based editor: a code pane with
// highlighting, a Check action, and an error panel, backed by the check
// and highlight packages.
package ui

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/dhamidi/javacheck/check"
	"github.com/dhamidi/javacheck/highlight"
)

//go:embed static templates
var embeddedFS embed.FS

type Server struct {
	staticFS   fs.FS
	templates  *template.Template
	mux        *http.ServeMux
	templateFS fs.FS
	funcMap    template.FuncMap
}

func NewServer() (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		staticFS:   staticFS,
		templates:  tmpl,
		mux:        http.NewServeMux(),
		templateFS: templateFS,
		funcMap:    funcMap,
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("POST /check", s.handleCheck)
	s.mux.HandleFunc("POST /highlight", s.handleHighlight)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tmpl.ExecuteTemplate(w, name, data)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "editor.html", nil)
}

type checkRequest struct {
	Text       string `json:"text"`
	FirstError bool   `json:"firstError"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	req, ok := readCheckRequest(w, r)
	if !ok {
		return
	}

	var opts []check.Option
	if req.FirstError {
		opts = append(opts, check.WithFirstErrorOnly())
	}
	diags := check.Validate(req.Text, opts...)

	if r.Header.Get("Accept") == "text/html" {
		s.render(w, "diagnostics.html", diags)
		return
	}

	if diags == nil {
		diags = []check.Diagnostic{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(diags)
}

func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	req, ok := readCheckRequest(w, r)
	if !ok {
		return
	}

	lines := highlight.TextHTML(req.Text)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Lines []string `json:"lines"`
	}{Lines: lines})
}

// readCheckRequest accepts either a JSON body or a plain-text buffer, so
// the page script and curl both work.
func readCheckRequest(w http.ResponseWriter, r *http.Request) (checkRequest, bool) {
	var req checkRequest

	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return req, false
		}
		return req, true
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return req, false
	}
	req.Text = string(body)
	return req, true
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
