package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/task"
)

// EditOptions
type EditOptions struct {
	Text      string
	DueString string
	ClearDue  bool
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVar(&o.Text, "text", "",
		"Replace the text of the task.")
	cmd.Flags().StringVar(&o.DueString, "due", "",
		`Replace the due date, example: --due="2020-02-28".`)
	cmd.Flags().BoolVar(&o.ClearDue, "clear-due", false,
		"Remove the due date.")
}

// Set reports whether any edit flag was given.
func (o *EditOptions) Set(cmd *cobra.Command) bool {
	f := cmd.Flags()
	return f.Changed("text") || f.Changed("due") || f.Changed("clear-due")
}

// Changes returns the fields that were set on cmd. Nil means unchanged.
func (o *EditOptions) Changes(cmd *cobra.Command) (*string, *task.Date, error) {
	var (
		text *string
		due  *task.Date
	)
	if cmd.Flags().Changed("text") {
		text = &o.Text
	}
	if o.ClearDue && cmd.Flags().Changed("due") {
		return nil, nil, errors.New("--due and --clear-due can not be used together")
	}
	switch {
	case o.ClearDue:
		due = &task.Date{}
	case cmd.Flags().Changed("due"):
		d, err := task.ParseDate(o.DueString)
		if err != nil {
			return nil, nil, err
		}
		due = &d
	}
	if text == nil && due == nil {
		return nil, nil, errors.New("nothing to change, set --text, --due or --clear-due")
	}
	return text, due, nil
}
