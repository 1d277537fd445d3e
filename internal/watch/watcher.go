// Package watch regenerates the project whenever its configuration file
// changes, with an optional fixed-interval rebuild for content that drifts
// without config edits (AI copy, refreshed industry assets).
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"github.com/siteforge-dev/siteforge/internal/logfields"
)

// RebuildFunc runs one full generation. The watcher owns scheduling only;
// loading the config and driving the generator stays with the caller so a
// config edit picks up new values on the next build.
type RebuildFunc func(ctx context.Context) error

// Option adjusts watcher behavior.
type Option func(*Watcher)

// WithInterval adds a periodic rebuild on top of change-driven ones.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) { w.every = d }
}

// WithDebounce overrides the settle window for rapid successive writes.
// Editors often write a file several times per save.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// Watcher drives rebuilds from filesystem events and an optional schedule.
type Watcher struct {
	configPath string
	rebuild    RebuildFunc
	fs         *fsnotify.Watcher
	every      time.Duration
	debounce   time.Duration
	buildChan  chan string
}

// New creates a watcher for the given config file.
func New(configPath string, rebuild RebuildFunc, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	w := &Watcher{
		configPath: absPath,
		rebuild:    rebuild,
		fs:         fs,
		debounce:   500 * time.Millisecond,
		buildChan:  make(chan string, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run performs an initial build, then blocks rebuilding on every config
// change until the context is canceled. Returns the context error on
// cancellation; individual build failures are logged, never fatal.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.fs.Close() }()

	// Watch the directory, not the file: editors replace files via
	// rename, which drops a direct file watch.
	configDir := filepath.Dir(w.configPath)
	if err := w.fs.Add(configDir); err != nil {
		return fmt.Errorf("watch config directory %s: %w", configDir, err)
	}

	if w.every > 0 {
		sched, err := gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("create scheduler: %w", err)
		}
		_, err = sched.NewJob(
			gocron.DurationJob(w.every),
			gocron.NewTask(func() { w.trigger("interval") }),
			gocron.WithName("periodic-rebuild"),
		)
		if err != nil {
			return fmt.Errorf("schedule periodic rebuild: %w", err)
		}
		sched.Start()
		defer func() { _ = sched.Shutdown() }()
		slog.Info("periodic rebuild scheduled", slog.Duration("every", w.every))
	}

	slog.Info("watching configuration", logfields.Path(w.configPath))
	w.runBuild(ctx, "startup")

	var settle *time.Timer
	var settleC <-chan time.Time
	configFile := filepath.Base(w.configPath)

	for {
		select {
		case <-ctx.Done():
			if settle != nil {
				settle.Stop()
			}
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != configFile {
				continue
			}
			if event.Op&fsnotify.Remove != 0 {
				slog.Warn("config file removed", logfields.Path(event.Name))
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("config change detected", logfields.Path(event.Name))
			if settle == nil {
				settle = time.NewTimer(w.debounce)
				settleC = settle.C
			} else {
				settle.Reset(w.debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			slog.Error("config watcher error", logfields.Error(err))

		case <-settleC:
			w.runBuild(ctx, "config change")

		case reason := <-w.buildChan:
			w.runBuild(ctx, reason)
		}
	}
}

// trigger requests a rebuild without blocking; a pending request absorbs
// further triggers.
func (w *Watcher) trigger(reason string) {
	select {
	case w.buildChan <- reason:
	default:
	}
}

func (w *Watcher) runBuild(ctx context.Context, reason string) {
	start := time.Now()
	slog.Info("rebuild started", slog.String("reason", reason))
	if err := w.rebuild(ctx); err != nil {
		slog.Error("rebuild failed",
			slog.String("reason", reason),
			logfields.Error(err))
		return
	}
	slog.Info("rebuild finished",
		slog.String("reason", reason),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
}
