package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is used when no debounce window is configured.
const DefaultDebounce = 300 * time.Millisecond

// ChangeEvent represents a change to a watched document.
type ChangeEvent struct {
	Path       string
	ChangeType string // "create", "write", "remove", "rename"
}

// Watcher watches one directory for document changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	match    func(path string) bool
	onChange func(ChangeEvent)
	logger   *zap.Logger

	mu   sync.Mutex
	last ChangeEvent
}

// Options configures a Watcher.
type Options struct {
	Debounce time.Duration
	// Match filters paths; nil accepts every path.
	Match    func(path string) bool
	OnChange func(ChangeEvent)
	Logger   *zap.Logger
}

// New creates a watcher for dir.
func New(dir string, opts Options) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:  fw,
		debounce: debounce,
		match:    opts.Match,
		onChange: opts.OnChange,
		logger:   logger,
	}, nil
}

// Run starts the event loop. It blocks until the context is cancelled and
// returns only after any pending callback has finished.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debouncer := NewDebouncer(w.debounce, func() {
		w.mu.Lock()
		event := w.last
		w.mu.Unlock()
		if w.onChange != nil {
			w.onChange(event)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			changeType := opToChangeType(event.Op)
			if changeType == "" {
				continue
			}
			if w.match != nil && !w.match(event.Name) {
				continue
			}
			w.logger.Debug("document changed",
				zap.String("file", filepath.Base(event.Name)),
				zap.String("change", changeType))

			w.mu.Lock()
			w.last = ChangeEvent{Path: event.Name, ChangeType: changeType}
			w.mu.Unlock()
			debouncer.Trigger()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func opToChangeType(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return ""
	}
}
