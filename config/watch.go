package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file when it changes on disk.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
}

// NewWatcher starts watching path. The parent directory is watched so
// that editors replacing the file by rename are noticed.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	return &Watcher{path: path, w: w}, nil
}

// Run calls fn with the reloaded settings, or the load error, after
// every write to the file. It returns when ctx is done or the watcher
// is closed.
func (w *Watcher) Run(ctx context.Context, fn func(Settings, error)) error {
	defer w.w.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				fn(Load(w.path))
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			fn(Settings{}, fmt.Errorf("config: watch %s: %w", w.path, err))
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error { return w.w.Close() }

// Watch is NewWatcher followed by Run.
func Watch(ctx context.Context, path string, fn func(Settings, error)) error {
	w, err := NewWatcher(path)
	if err != nil {
		return err
	}
	return w.Run(ctx, fn)
}
