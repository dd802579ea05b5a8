package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file for changes and triggers a callback.
// Events are debounced so that editors writing in several bursts only
// trigger one reload.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(string)
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for the given file. The parent directory is
// watched rather than the file itself, because image editors commonly
// replace the file through a rename.
func New(path string, debounce time.Duration, onChange func(string)) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.Add(filepath.Dir(absPath)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	return &FileWatcher{
		watcher:  w,
		path:     absPath,
		onChange: onChange,
		debounce: debounce,
	}, nil
}

// Start begins delivering change events. The callback runs on the
// watcher's timer goroutine.
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}

				if event.Name != fw.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				fw.schedule()

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

func (fw *FileWatcher) schedule() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, func() {
		fw.onChange(fw.path)
	})
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}
