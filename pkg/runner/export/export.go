// Package export writes every task in a machine-readable format.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/tasklist"
)

type Export struct {
	Format string
	// File, when set, is written instead of Out.
	File  string
	Store *tasklist.Store
	Out   io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no store")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	if n.File != "" {
		f, err := os.Create(n.File)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		defer f.Close()
		out = f
	}
	return printers.Export(out, n.Format, n.Store.Tasks())
}
