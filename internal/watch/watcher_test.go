package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"localelint/internal/document"
)

type eventLog struct {
	mu     sync.Mutex
	events []ChangeEvent
}

func (l *eventLog) add(event ChangeEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *eventLog) snapshot() []ChangeEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]ChangeEvent(nil), l.events...)
}

func startWatcher(t *testing.T, dir string, log *eventLog) (context.CancelFunc, <-chan error) {
	t.Helper()
	w, err := New(dir, Options{
		Debounce: 50 * time.Millisecond,
		Match:    document.IsDocumentPath,
		OnChange: log.add,
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	return cancel, done
}

func stopWatcher(t *testing.T, cancel context.CancelFunc, done <-chan error) {
	t.Helper()
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_DetectsDocumentWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.yml")
	if err := os.WriteFile(path, []byte("en: {}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var log eventLog
	cancel, done := startWatcher(t, dir, &log)

	if err := os.WriteFile(path, []byte("en:\n  js: {}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(250 * time.Millisecond)
	stopWatcher(t, cancel, done)

	events := log.snapshot()
	if len(events) == 0 {
		t.Fatal("expected at least one change event")
	}
	if events[len(events)-1].Path != path {
		t.Errorf("expected change for %s, got %+v", path, events)
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	var log eventLog
	cancel, done := startWatcher(t, dir, &log)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	stopWatcher(t, cancel, done)

	if events := log.snapshot(); len(events) != 0 {
		t.Errorf("expected no events, got %+v", events)
	}
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), Options{})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
