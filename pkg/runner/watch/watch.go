// Package watch reprints the task list whenever the stored value changes.
package watch

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

type Watch struct {
	Filter task.Filter
	ShowID bool
	Key    string

	Backend store.Backend
	Store   *tasklist.Store
	Logger  *log.Logger
	Out     io.Writer
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Store == nil || n.Backend == nil {
		return errors.New("can not watch, no store")
	}
	logger := n.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	key := n.Key
	if key == "" {
		key = store.DefaultKey
	}

	events, err := store.Watch(ctx, n.Backend, key)
	if err != nil {
		return err
	}

	n.Store.SetFilter(n.Filter)
	n.print()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := n.Store.Load(); err != nil {
				logger.Warn("reload failed", "err", err)
			}
			n.print()
		}
	}
}

func (n *Watch) print() {
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount(n.Filter.String(), len(n.Store.VisibleTasks()))
	pp.Tasks(n.Store.VisibleTasks()...)
}
