// Package key provides CLI helpers to display the task legend.
package key

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/task"
)

// Key prints the marks legend and the filter names.
type Key struct {
	Out io.Writer
}

func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = printers.Stdout()
	}
	_, _ = fmt.Fprintln(out, "")
	printers.Legend(out)

	_, _ = fmt.Fprint(out, "Filters:")
	for _, f := range task.Filters() {
		_, _ = fmt.Fprintf(out, " %s", f)
	}
	_, _ = fmt.Fprintln(out, "")
	return nil
}
