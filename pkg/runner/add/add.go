// Package add provides the runner logic for adding tasks.
package add

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

// Add appends a task and prints the open tasks.
type Add struct {
	Text    string
	DueDate task.Date
	ShowID  bool

	Store   *tasklist.Store
	Printer *printers.PrettyPrint
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	_, err := n.Store.AddTask(n.Text, n.DueDate)
	if errors.Is(err, tasklist.ErrValidationRejected) {
		return err
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowID: n.ShowID}
	}
	n.Store.SetFilter(task.Active)
	pp.TitleWithCount("Active", len(n.Store.VisibleTasks()))
	pp.Tasks(n.Store.VisibleTasks()...)

	return err
}
