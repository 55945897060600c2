package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_TriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{Dirs: []string{dir}, Debounce: 20 * time.Millisecond}, func(context.Context) error {
			runs.Add(1)
			return nil
		})
	}()

	// Give the watcher a moment to register before the first write.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`[]`), 0o644))

	require.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond, "a write should trigger a re-run")

	cancel()
	assert.NoError(t, <-done)
}

func TestRun_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{Dirs: []string{dir}, Debounce: 150 * time.Millisecond}, func(context.Context) error {
			runs.Add(1)
			return nil
		})
	}()

	time.Sleep(50 * time.Millisecond)
	// A burst of writes inside the debounce window collapses to one run.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`[]`), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	cancel()
	assert.NoError(t, <-done)
}

func TestRun_MissingDir(t *testing.T) {
	err := Run(context.Background(), Options{Dirs: []string{filepath.Join(t.TempDir(), "nope")}}, func(context.Context) error {
		return nil
	})
	assert.Error(t, err)
}
