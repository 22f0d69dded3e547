package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pathWatcher reports debounced changes to a set of files and directories.
//
// Files are watched through their parent directory so that editors which
// replace a file by rename are still seen.
type pathWatcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger

	files map[string]bool // absolute file paths
	dirs  map[string]bool // absolute directories; any entry inside counts
}

func newPathWatcher(paths []string, debounce time.Duration, logger *slog.Logger) (*pathWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	w := &pathWatcher{
		fsw:      fsw,
		debounce: debounce,
		logger:   logger,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}

		target := filepath.Dir(abs)
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			w.dirs[abs] = true
			target = abs
		} else {
			w.files[abs] = true
		}

		if err := fsw.Add(target); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", target, err)
		}
		logger.Debug("watching path", "path", abs)
	}
	return w, nil
}

// Run calls onChange once per burst of relevant events until ctx is done.
func (w *pathWatcher) Run(ctx context.Context, onChange func()) error {
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

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)

		case <-fire:
			fire = nil
			onChange()
		}
	}
}

func (w *pathWatcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(event.Name)
	return w.files[name] || w.dirs[filepath.Dir(name)]
}

// Close stops watching.
func (w *pathWatcher) Close() error {
	return w.fsw.Close()
}
