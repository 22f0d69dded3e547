package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathWatcherDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0o644))

	w, err := newPathWatcher([]string{file}, 50*time.Millisecond, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { calls.Add(1) })
	}()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(file, []byte(`{"n": 1}`), 0o644))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestPathWatcherRelevant(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0o644))
	schemaDir := filepath.Join(dir, "schema")
	require.NoError(t, os.Mkdir(schemaDir, 0o755))

	w, err := newPathWatcher([]string{file, schemaDir}, 0, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer w.Close()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"watched file write", fsnotify.Event{Name: file, Op: fsnotify.Write}, true},
		{"watched file chmod", fsnotify.Event{Name: file, Op: fsnotify.Chmod}, false},
		{"sibling file", fsnotify.Event{Name: filepath.Join(dir, "other.json"), Op: fsnotify.Write}, false},
		{"file in schema dir", fsnotify.Event{Name: filepath.Join(schemaDir, "a.cue"), Op: fsnotify.Create}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}

func TestPathWatcherMissingDirectory(t *testing.T) {
	_, err := newPathWatcher([]string{"/nonexistent/dir/doc.json"}, 0, slog.New(slog.DiscardHandler))
	require.Error(t, err)
}
