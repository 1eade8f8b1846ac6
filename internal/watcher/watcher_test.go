package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/lgtok/internal/pubsub"
)

func newTestWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	w, err := New(Config{Path: path, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	return w
}

func TestWatcher_ReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	w := newTestWatcher(t, path)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Broker().Subscribe(ctx)
	require.NoError(t, w.Start())

	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"a.b","value":"1","description":""}]`), 0o644))

	select {
	case ev := <-ch:
		assert.Equal(t, pubsub.ChangedEvent, ev.Type)
		assert.Equal(t, path, ev.Payload)
	case <-time.After(3 * time.Second):
		t.Fatal("no change event")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	w := newTestWatcher(t, path)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Broker().Subscribe(ctx)
	require.NoError(t, w.Start())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event for unrelated file: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	w := newTestWatcher(t, path)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Broker().Subscribe(ctx)
	require.NoError(t, w.Start())

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("no change event")
	}

	// The burst should have collapsed into a single event.
	select {
	case <-ch:
		t.Fatal("burst produced more than one event")
	case <-time.After(200 * time.Millisecond):
	}
}
