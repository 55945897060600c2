// Package watch re-runs a merge whenever either source directory
// changes, so parser output can be iterated on without re-invoking the
// tool by hand.
package watch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches bursts of filesystem events (an editor save
// typically produces several) into a single re-run.
const DefaultDebounce = 500 * time.Millisecond

// Rerun is invoked after events settle. An error is reported but does
// not stop watching; the next change triggers another attempt.
type Rerun func(ctx context.Context) error

// Options configures a watch loop.
type Options struct {
	// Dirs are the directories to watch (non-recursive, matching the
	// merger's non-recursive file sets).
	Dirs []string

	// Debounce is how long to wait after the last event before
	// re-running. Zero means DefaultDebounce.
	Debounce time.Duration

	// Out receives progress lines. Nil discards them.
	Out io.Writer
}

// Run watches the configured directories and calls rerun after each
// debounced batch of changes. It blocks until ctx is cancelled, which
// is the normal way to stop it (returns nil in that case).
func Run(ctx context.Context, opts Options, rerun Rerun) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range opts.Dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	// The timer starts stopped; the first relevant event arms it.
	timer := time.NewTimer(opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			timer.Reset(opts.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(opts.Out, "watch error: %v\n", err)

		case <-timer.C:
			if err := rerun(ctx); err != nil {
				fmt.Fprintf(opts.Out, "re-run failed: %v\n", err)
			}
		}
	}
}
