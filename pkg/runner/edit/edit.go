// Package edit provides the runner logic for changing a task's text or due
// date.
package edit

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

// Edit opens an edit on ID, applies the given drafts and saves. Nil fields
// keep the committed value.
type Edit struct {
	ID      string
	Text    *string
	DueDate *task.Date

	Store   *tasklist.Store
	Printer *printers.PrettyPrint
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowID: true}
	}

	t, err := n.Store.Resolve(n.ID)
	if err != nil {
		return err
	}
	if err := n.Store.StartEdit(t.ID); err != nil {
		return err
	}
	n.Store.UpdateDraft(tasklist.DraftUpdate{Text: n.Text, DueDate: n.DueDate})

	saved, err := n.Store.SaveEdit()
	if err != nil && !tasklist.IsWarning(err) {
		n.Store.CancelEdit()
		return err
	}

	pp.NewLine()
	pp.Title("edited")
	pp.Tasks(saved)
	return err
}
