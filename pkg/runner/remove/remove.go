// Package remove provides the runner logic for deleting tasks.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/tasklist"
)

// Remove deletes the task matching ID, which may be a unique id prefix.
type Remove struct {
	ID      string
	Store   *tasklist.Store
	Printer *printers.PrettyPrint
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowID: true}
	}

	t, err := n.Store.Resolve(n.ID)
	if err != nil {
		return err
	}
	err = n.Store.RemoveTask(t.ID)
	if err != nil && !tasklist.IsWarning(err) {
		return err
	}

	pp.NewLine()
	pp.Title("removed")
	pp.Tasks(t)
	return err
}
