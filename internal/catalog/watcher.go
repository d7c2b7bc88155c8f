// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     catalog
// Description: Catalog file watcher for hot reload
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package catalog

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
	exfclog "github.com/msto63/exfc/foundation/core/log"
	"github.com/msto63/exfc/pkg/core/logging"
)

// DefaultDebounce is the quiet period after the last event of a save before
// the catalog is read
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a catalog file whenever it changes on disk
type Watcher struct {
	path     string
	logger   *exfclog.Logger
	debounce time.Duration
	onChange func(*File)
	onError  func(error)
}

// NewWatcher creates a watcher for the catalog at path
func NewWatcher(path string, logger *exfclog.Logger) *Watcher {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		logger:   logger.WithName("catalog-watch"),
		debounce: DefaultDebounce,
		onChange: func(*File) {},
		onError:  func(error) {},
	}
}

// OnChange sets the callback invoked with every successfully parsed version
func (w *Watcher) OnChange(fn func(*File)) *Watcher {
	w.onChange = fn
	return w
}

// OnError sets the callback invoked when a changed file cannot be parsed
func (w *Watcher) OnError(fn func(error)) *Watcher {
	w.onError = fn
	return w
}

// WithDebounce sets the debounce interval
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run watches until ctx is cancelled. The directory is watched instead of
// the file so editors that replace the file on save are followed.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return exfcerror.Wrap(err, "failed to create watcher").
			WithCode(exfcerror.CodeInternal)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return exfcerror.Wrap(err, "failed to watch directory").
			WithCode(exfcerror.CodeMissingConfig).
			WithDetail("dir", dir)
	}

	w.logger.Info("watching catalog", exfclog.String("path", w.path))

	// reloads run once the file has been quiet for the debounce interval
	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("catalog watcher stopped")
			return nil

		case <-pending:
			pending = nil
			w.reload()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if w.debounce <= 0 {
				w.reload()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.ErrorWithErr("watcher error", err)
		}
	}
}

func (w *Watcher) reload() {
	f, err := ReadFile(w.path)
	if err != nil {
		w.logger.ErrorWithErr("failed to reload catalog", err)
		w.onError(err)
		return
	}
	w.logger.Debug("catalog reloaded", exfclog.Int("entries", len(f.Exceptions)))
	w.onChange(f)
}
