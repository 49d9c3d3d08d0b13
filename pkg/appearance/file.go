package appearance

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher is a Source backed by a small text file containing "dark"
// or "light". The parent directory is watched rather than the file so
// that editors and hooks replacing the file by rename are seen too.
type FileWatcher struct {
	path     string
	fallback bool
	log      *slog.Logger
	watcher  *fsnotify.Watcher
	subs     subscribers

	mu   sync.RWMutex
	dark bool

	done chan struct{}
	once sync.Once
}

// NewFileWatcher reads path and starts watching it. fallback is reported
// while the file is missing or unreadable.
func NewFileWatcher(path string, fallback bool, log *slog.Logger) (*FileWatcher, error) {
	if log == nil {
		log = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("appearance: resolve %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("appearance: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("appearance: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &FileWatcher{
		path:     abs,
		fallback: fallback,
		log:      log,
		watcher:  watcher,
		done:     make(chan struct{}),
	}
	w.dark = w.read()
	go w.processEvents()
	return w, nil
}

// Dark implements Source.
func (w *FileWatcher) Dark() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dark
}

// Subscribe implements Source.
func (w *FileWatcher) Subscribe(fn func(bool)) func() {
	return w.subs.add(fn)
}

// Close stops the watcher. It is safe to call more than once.
func (w *FileWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *FileWatcher) read() bool {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return w.fallback
	}
	dark, ok := Parse(string(data))
	if !ok {
		return w.fallback
	}
	return dark
}

func (w *FileWatcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.refresh()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("appearance watcher error", "error", err)
		}
	}
}

// refresh re-reads the file and notifies subscribers if the value changed.
func (w *FileWatcher) refresh() {
	dark := w.read()
	w.mu.Lock()
	changed := dark != w.dark
	w.dark = dark
	w.mu.Unlock()
	if changed {
		w.log.Debug("appearance changed", "dark", dark)
		w.subs.notify(dark)
	}
}
