// Package watch reloads the challenge collection when its file changes.
// Every reload produces a fresh snapshot; nothing is mutated in place.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Makepad-fr/pbc30/internal/model"
)

// Result is the outcome of one reload. Err is set when the new file could
// not be loaded; callers keep their previous snapshot in that case.
type Result struct {
	Snapshot model.Snapshot
	Err      error
}

// LoadFunc reads the collection at path.
type LoadFunc func(path string) (model.Snapshot, error)

// Watcher reloads one data file.
type Watcher struct {
	path     string
	load     LoadFunc
	debounce time.Duration
	log      *zap.Logger
}

// New returns a watcher for path. Editors often write a file in several
// steps, so events are coalesced for debounce before reloading.
func New(path string, load LoadFunc, debounce time.Duration, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{path: path, load: load, debounce: debounce, log: log.Named("watch")}
}

// Run watches until ctx is done, sending one Result per settled change.
// The directory is watched rather than the file so atomic renames are seen.
func (w *Watcher) Run(ctx context.Context, out chan<- Result) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(w.path)
	w.log.Debug("watching", zap.String("path", target))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.log.Debug("change", zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-fire:
			fire = nil
			snap, err := w.load(w.path)
			if err != nil {
				w.log.Warn("reload failed", zap.Error(err))
			} else {
				w.log.Info("reloaded", zap.String("source", snap.Source()), zap.Int("challenges", snap.Len()))
			}
			select {
			case out <- Result{Snapshot: snap, Err: err}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
