package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/scanner"
)

// DefaultDebounce is the quiet period after the last change before a re-run.
const DefaultDebounce = 300 * time.Millisecond

// SourceWatcher reports changes to source files below a root directory.
// New directories are watched as they appear; the directories the scanner
// skips are never watched. Adding, moving or deleting a watched directory
// counts as a change.
type SourceWatcher struct {
	root     string
	debounce time.Duration
	log      *zap.SugaredLogger
	fs       *fsnotify.Watcher

	// dirs is only touched by the Run goroutine.
	dirs map[string]bool
}

func New(root string, debounce time.Duration, log *zap.SugaredLogger) (*SourceWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &SourceWatcher{root: root, debounce: debounce, log: log, fs: fw, dirs: make(map[string]bool)}, nil
}

// Run blocks until ctx is done, calling onChange once per burst of source
// file changes. onChange runs on the Run goroutine, so calls never overlap.
func (w *SourceWatcher) Run(ctx context.Context, onChange func()) error {
	defer w.fs.Close()

	if err := w.addRecursively(w.root); err != nil {
		return fmt.Errorf("adding watchers: %w", err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !w.relevant(event) {
				continue
			}

			w.log.Debugf("file event: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Warnf("watcher error: %v", err)
		}
	}
}

// relevant reports whether event should trigger a re-run, starting to watch
// new directories and forgetting removed ones on the way.
func (w *SourceWatcher) relevant(event fsnotify.Event) bool {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if scanner.IsSkippedDir(info.Name()) {
				return false
			}
			w.log.Debugf("watching new directory %s", event.Name)
			if err := w.addRecursively(event.Name); err != nil {
				w.log.Warnf("watching %s: %v", event.Name, err)
			}
			return true
		}
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if w.dirs[event.Name] {
			w.forget(event.Name)
			return true
		}
	}

	return scanner.IsSourceFile(event.Name) && event.Op != fsnotify.Chmod
}

// forget drops dir and everything below it from the watch set.
func (w *SourceWatcher) forget(dir string) {
	prefix := dir + string(filepath.Separator)
	for path := range w.dirs {
		if path == dir || strings.HasPrefix(path, prefix) {
			delete(w.dirs, path)
			_ = w.fs.Remove(path)
		}
	}
}

func (w *SourceWatcher) addRecursively(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && scanner.IsSkippedDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.fs.Add(path); err != nil {
			return err
		}
		w.dirs[path] = true
		return nil
	})
}
