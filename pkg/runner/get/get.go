// Package get provides the runner logic for listing tasks.
package get

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
	"tableflip.dev/todo/pkg/timeutil"
)

// Get prints the tasks visible under Filter.
type Get struct {
	Filter task.Filter
	ShowID bool
	Wide   bool
	JSON   bool
	// DueWithin, when set, keeps only tasks due within the window
	// (overdue included). Zero means due today.
	DueWithin *time.Duration
	Now       time.Time

	Store *tasklist.Store
	Out   io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	n.Store.SetFilter(n.Filter)
	tasks := n.filtered(n.Store.VisibleTasks())

	switch {
	case n.JSON:
		return printers.Export(n.out(), "json", tasks)
	case n.Wide:
		printers.Table(n.out(), tasks)
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Now: n.Now, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount(n.title(), len(tasks))
	pp.Tasks(tasks...)
	return nil
}

func (n *Get) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return printers.Stdout()
}

func (n *Get) filtered(all []task.Task) []task.Task {
	if n.DueWithin == nil {
		return all
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	c := make([]task.Task, 0, len(all))
	for _, t := range all {
		if t.DueDate.Within(now, *n.DueWithin) {
			c = append(c, t)
		}
	}
	return c
}

func (n *Get) title() string {
	s := n.Filter.String()
	s = strings.ToUpper(s[:1]) + s[1:]
	if n.DueWithin != nil {
		if w := timeutil.FormatWindow(*n.DueWithin); w == "today" {
			s += ", due today"
		} else {
			s += ", due within " + w
		}
	}
	return s
}
