package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileWatcher polls the workspace root and revalidates any .java file whose
// modification time advanced, so diagnostics stay current for edits made
// outside the editor. Deleted files are dropped from the workspace.
type FileWatcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time

	// OnChange and OnRemove, when set before Start, run after a file has
	// been revalidated or dropped. The LSP server uses them to push
	// refreshed diagnostics to the client.
	OnChange func(path string)
	OnRemove func(path string)
}

func NewFileWatcher(w *Workspace) *FileWatcher {
	return &FileWatcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
}

func (fw *FileWatcher) Start() {
	go fw.run()
}

func (fw *FileWatcher) Stop() {
	close(fw.stopCh)
}

func (fw *FileWatcher) run() {
	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.scan()

	for {
		select {
		case <-fw.stopCh:
			return
		case <-ticker.C:
			fw.scan()
		}
	}
}

// scan walks the root once, revalidating new and modified .java files and
// dropping files that disappeared since the last pass.
func (fw *FileWatcher) scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(fw.workspace.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".java" {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := fw.modTimes[path]
		if known && !info.ModTime().After(lastMod) {
			return nil
		}
		fw.modTimes[path] = info.ModTime()
		if fw.workspace.ScanFile(path) == nil && fw.OnChange != nil {
			fw.OnChange(path)
		}
		return nil
	})

	for path := range fw.modTimes {
		if currentFiles[path] {
			continue
		}
		delete(fw.modTimes, path)
		fw.workspace.RemoveFile(path)
		if fw.OnRemove != nil {
			fw.OnRemove(path)
		}
	}
}
