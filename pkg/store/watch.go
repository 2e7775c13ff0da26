package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNotWatchable is returned by Watch for backends without files on disk.
var ErrNotWatchable = errors.New("store: backend does not support watching")

// Event is emitted by Watch when the stored value for Key changes on disk.
type Event struct {
	Key string
}

// watchTarget returns the directory to watch and the file name inside it that
// holds key.
func watchTarget(b Backend, key string) (string, string, error) {
	switch v := b.(type) {
	case *Diskv:
		return v.BasePath(), key, nil
	case *SQLite:
		return filepath.Dir(v.path), filepath.Base(v.path), nil
	}
	return "", "", ErrNotWatchable
}

// Watch streams change events for key until ctx is cancelled. Callers should
// drain the returned channel to avoid missing events. The channel is closed
// once ctx is done or the watcher fails.
func Watch(ctx context.Context, b Backend, key string) (<-chan Event, error) {
	dir, name, err := watchTarget(b, key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is behind; it reloads the whole value anyway.
			}
		}

		// The timer only signals; events are sent from this goroutine so
		// nothing writes to the channel after it is closed.
		tick := make(chan struct{}, 1)
		throttle := newEventThrottle(100*time.Millisecond, func() {
			select {
			case tick <- struct{}{}:
			default:
			}
		})
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-tick:
				send(Event{Key: key})
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Unclassified failure, ask for a reload to stay in sync.
				throttle.Enqueue()
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != name {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				throttle.Enqueue()
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces bursts of filesystem activity (diskv writes through
// a temp file and rename) into a single notification.
type eventThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
	fire  func()
}

func newEventThrottle(delay time.Duration, fire func()) *eventThrottle {
	return &eventThrottle{delay: delay, fire: fire}
}

func (t *eventThrottle) Enqueue() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, t.flush)
	}
}

func (t *eventThrottle) flush() {
	t.mu.Lock()
	t.timer = nil
	t.mu.Unlock()
	t.fire()
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
