// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/timeutil"
)

// FilterOptions captures which tasks a listing command shows.
type FilterOptions struct {
	Filter    task.Filter
	DueWithin string
	Wide      bool
}

// AddDueWithinArgs registers the due window flag.
func AddDueWithinArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.DueWithin, "due-within", "",
		`Only show tasks due within a window, example: --due-within=1w, --due-within=today.`)
}

// AddWideArgs registers the table layout flag.
func AddWideArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().BoolVarP(&o.Wide, "wide", "w", false,
		"Print a table with ids and due dates.")
}

// ParseArgs reads an optional filter name from args.
func (o *FilterOptions) ParseArgs(args []string) error {
	if len(args) == 0 {
		o.Filter = task.All
		return nil
	}
	f, err := task.ParseFilter(args[0])
	if err != nil {
		return err
	}
	o.Filter = f
	return nil
}

// Window returns the parsed due window, nil when the flag is unset.
func (o *FilterOptions) Window(cmd *cobra.Command) (*time.Duration, error) {
	if !cmd.Flags().Changed("due-within") {
		return nil, nil
	}
	d, _, err := timeutil.ParseWindow(o.DueWithin)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
