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

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func startWatcher(t *testing.T, w *Watcher) (cancel func()) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()
	return func() {
		stop()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop")
		}
	}
}

func TestWatcherRebuildsOnConfigChange(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "siteforge.yaml")
	writeConfig(t, cfgPath, "project:\n  name: demo\n")

	var builds atomic.Int32
	w, err := New(cfgPath, func(ctx context.Context) error {
		builds.Add(1)
		return nil
	}, WithDebounce(30*time.Millisecond))
	require.NoError(t, err)

	stop := startWatcher(t, w)
	defer stop()

	// Startup build.
	require.Eventually(t, func() bool { return builds.Load() >= 1 },
		3*time.Second, 10*time.Millisecond)

	writeConfig(t, cfgPath, "project:\n  name: demo2\n")
	require.Eventually(t, func() bool { return builds.Load() >= 2 },
		3*time.Second, 10*time.Millisecond)
}

func TestWatcherDebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "siteforge.yaml")
	writeConfig(t, cfgPath, "a: 1\n")

	var builds atomic.Int32
	w, err := New(cfgPath, func(ctx context.Context) error {
		builds.Add(1)
		return nil
	}, WithDebounce(150*time.Millisecond))
	require.NoError(t, err)

	stop := startWatcher(t, w)
	defer stop()

	require.Eventually(t, func() bool { return builds.Load() >= 1 },
		3*time.Second, 10*time.Millisecond)

	for i := 0; i < 5; i++ {
		writeConfig(t, cfgPath, "a: 2\n")
		time.Sleep(20 * time.Millisecond)
	}
	require.Eventually(t, func() bool { return builds.Load() >= 2 },
		3*time.Second, 10*time.Millisecond)

	// The burst settles into one build, not five.
	time.Sleep(300 * time.Millisecond)
	assert.LessOrEqual(t, builds.Load(), int32(3))
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "siteforge.yaml")
	writeConfig(t, cfgPath, "a: 1\n")

	var builds atomic.Int32
	w, err := New(cfgPath, func(ctx context.Context) error {
		builds.Add(1)
		return nil
	}, WithDebounce(30*time.Millisecond))
	require.NoError(t, err)

	stop := startWatcher(t, w)
	defer stop()

	require.Eventually(t, func() bool { return builds.Load() >= 1 },
		3*time.Second, 10*time.Millisecond)

	writeConfig(t, filepath.Join(dir, "notes.txt"), "not the config\n")
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), builds.Load())
}

func TestWatcherPeriodicRebuild(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "siteforge.yaml")
	writeConfig(t, cfgPath, "a: 1\n")

	var builds atomic.Int32
	w, err := New(cfgPath, func(ctx context.Context) error {
		builds.Add(1)
		return nil
	}, WithInterval(100*time.Millisecond), WithDebounce(30*time.Millisecond))
	require.NoError(t, err)

	stop := startWatcher(t, w)
	defer stop()

	// Startup plus at least one scheduled run.
	require.Eventually(t, func() bool { return builds.Load() >= 2 },
		5*time.Second, 20*time.Millisecond)
}

func TestWatcherBuildErrorsAreNotFatal(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "siteforge.yaml")
	writeConfig(t, cfgPath, "a: 1\n")

	var builds atomic.Int32
	w, err := New(cfgPath, func(ctx context.Context) error {
		builds.Add(1)
		return assert.AnError
	}, WithDebounce(30*time.Millisecond))
	require.NoError(t, err)

	stop := startWatcher(t, w)
	defer stop()

	require.Eventually(t, func() bool { return builds.Load() >= 1 },
		3*time.Second, 10*time.Millisecond)

	writeConfig(t, cfgPath, "a: 2\n")
	require.Eventually(t, func() bool { return builds.Load() >= 2 },
		3*time.Second, 10*time.Millisecond)
}
