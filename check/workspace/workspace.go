// Package workspace tracks a set of Java files and keeps their check
// diagnostics current, for use by the LSP server and the file watcher.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dhamidi/javacheck/check"
)

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
}

type FileInfo struct {
	Path        string
	Content     []byte
	Diagnostics []check.Diagnostic
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".java" {
			w.ScanFile(path)
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return w.UpdateFile(path, content)
}

// UpdateFile replaces the tracked content for path and revalidates it from
// a fresh scan state, so no nesting leaks between files or revisions.
func (w *Workspace) UpdateFile(path string, content []byte) error {
	diags := check.Validate(string(content), check.WithFile(filepath.Base(path)))

	w.mu.Lock()
	defer w.mu.Unlock()

	w.files[path] = &FileInfo{
		Path:        path,
		Content:     content,
		Diagnostics: diags,
	}
	return nil
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Diagnostics returns the current diagnostics for path, or nil if the file
// is not tracked.
func (w *Workspace) Diagnostics(path string) []check.Diagnostic {
	w.mu.RLock()
	defer w.mu.RUnlock()
	f := w.files[path]
	if f == nil {
		return nil
	}
	return f.Diagnostics
}

// AllDiagnostics returns the diagnostics of every tracked file, ordered by
// path for stable output.
func (w *Workspace) AllDiagnostics() []check.Diagnostic {
	w.mu.RLock()
	defer w.mu.RUnlock()

	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var all []check.Diagnostic
	for _, path := range paths {
		all = append(all, w.files[path].Diagnostics...)
	}
	return all
}
