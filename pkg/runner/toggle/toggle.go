// Package toggle provides the runner logic for completing and reopening tasks.
package toggle

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/tasklist"
)

// Toggle flips the done flag of the task matching ID.
type Toggle struct {
	ID      string
	Store   *tasklist.Store
	Printer *printers.PrettyPrint
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not toggle, no store")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowID: true}
	}

	t, err := n.Store.Resolve(n.ID)
	if err != nil {
		return err
	}
	t, err = n.Store.ToggleDone(t.ID)
	if err != nil && !tasklist.IsWarning(err) {
		return err
	}

	state := "reopened"
	if t.Done {
		state = "completed"
	}
	pp.NewLine()
	pp.Title(state)
	pp.Tasks(t)

	return err
}
