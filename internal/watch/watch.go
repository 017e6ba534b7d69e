// Package watch reruns a callback when a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long File waits after the last event before calling back.
// Editors often write a file in several steps.
var Debounce = 100 * time.Millisecond

// File watches path and calls onChange after it is written or recreated.
// Callback errors are logged and watching goes on. File blocks until ctx
// is done.
func File(ctx context.Context, path string, onChange func() error, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so atomic saves (write temp, rename) are seen.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	logger.Debug("watching file", "path", target)

	timer := time.NewTimer(Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(Debounce)

		case <-timer.C:
			if err := onChange(); err != nil {
				logger.Warn("failed to handle change", "path", target, "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
