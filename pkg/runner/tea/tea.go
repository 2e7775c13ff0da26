// Package teaui is the interactive Bubble Tea front end for the task list.
package teaui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/tasklist"
)

// UI runs the full-screen task list until the user quits or ctx is done.
type UI struct {
	Store   *tasklist.Store
	Backend store.Backend
	Key     string
	Logger  *log.Logger
}

func (u *UI) Do(ctx context.Context) error {
	if u.Store == nil {
		return errors.New("teaui: no task store")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var opts Options
	if u.Backend != nil {
		changes, err := store.Watch(ctx, u.Backend, u.Key)
		switch {
		case err == nil:
			opts.Changes = changes
		case errors.Is(err, store.ErrNotWatchable):
		default:
			if u.Logger != nil {
				u.Logger.Warn("not following outside changes", "err", err)
			}
		}
	}

	p := tea.NewProgram(New(u.Store, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("teaui: %w", err)
	}
	return nil
}
