package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/task"
)

// AddOptions
type AddOptions struct {
	Text      string
	DueString string
}

func AddDueArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.DueString, "due", "",
		`Specify a due date, example: --due="2020-02-28".`)
}

func (o *AddOptions) GetDue() (task.Date, error) {
	return task.ParseDate(o.DueString)
}
