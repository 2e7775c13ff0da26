package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchEmitsKeyChanges(t *testing.T) {
	b, err := NewDiskv(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatalf("diskv: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, b, "tasks")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := b.Write("tasks", []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Key != "tasks" {
			t.Fatalf("expected key 'tasks', got %q", evt.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("expected channel to close after cancel")
		}
	}
}

func TestWatchMemoryUnsupported(t *testing.T) {
	if _, err := Watch(context.Background(), NewMemory(), "tasks"); !errors.Is(err, ErrNotWatchable) {
		t.Fatalf("expected ErrNotWatchable, got %v", err)
	}
}
