package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcherRevalidatesOnModification(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.java")
	writeFile(t, path, "foo bar baz")

	w := New(dir)
	fw := NewFileWatcher(w)
	var changed []string
	fw.OnChange = func(p string) { changed = append(changed, p) }

	fw.scan()

	if diags := w.Diagnostics(path); len(diags) != 1 {
		t.Fatalf("Diagnostics returned %d entries after first scan, want 1: %+v", len(diags), diags)
	}
	if len(changed) != 1 || changed[0] != path {
		t.Fatalf("OnChange calls = %v, want [%s]", changed, path)
	}

	// An unchanged file is not rescanned.
	fw.scan()
	if len(changed) != 1 {
		t.Errorf("OnChange calls after idle scan = %d, want 1", len(changed))
	}

	// Fixing the file with a newer mod time clears its diagnostics.
	writeFile(t, path, "public class Foo")
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	fw.scan()
	if diags := w.Diagnostics(path); len(diags) != 0 {
		t.Errorf("Diagnostics after fix = %+v, want none", diags)
	}
	if len(changed) != 2 {
		t.Errorf("OnChange calls = %d, want 2", len(changed))
	}
}

func TestFileWatcherDropsDeletedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.java")
	writeFile(t, path, "foo bar baz")

	w := New(dir)
	fw := NewFileWatcher(w)
	var removed []string
	fw.OnRemove = func(p string) { removed = append(removed, p) }

	fw.scan()
	if w.GetFile(path) == nil {
		t.Fatalf("file not tracked after first scan")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	fw.scan()
	if w.GetFile(path) != nil {
		t.Errorf("file still tracked after deletion")
	}
	if len(removed) != 1 || removed[0] != path {
		t.Errorf("OnRemove calls = %v, want [%s]", removed, path)
	}
	if all := w.AllDiagnostics(); len(all) != 0 {
		t.Errorf("AllDiagnostics = %+v, want none", all)
	}
}

func TestFileWatcherIgnoresNonJavaAndDotDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.txt"), "foo bar baz")
	hidden := filepath.Join(dir, ".cache")
	if err := os.Mkdir(hidden, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(hidden, "Hidden.java"), "foo bar baz")

	w := New(dir)
	fw := NewFileWatcher(w)
	var changed []string
	fw.OnChange = func(p string) { changed = append(changed, p) }

	fw.scan()

	if len(changed) != 0 {
		t.Errorf("OnChange calls = %v, want none", changed)
	}
	if all := w.AllDiagnostics(); len(all) != 0 {
		t.Errorf("AllDiagnostics = %+v, want none", all)
	}
}
