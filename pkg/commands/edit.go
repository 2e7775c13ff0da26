package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/edit"
	"tableflip.dev/todo/pkg/task"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	eo := &options.EditOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the text or due date of a task",
		Example: `
todo edit 0f3c --text "call mum back"
todo edit 0f3c --due 2025-06-03
todo edit 0f3c --clear-due
todo edit -i
`,
		Args:              idArg(io, i),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				text *string
				due  *task.Date
				err  error
			)
			if !i.Interactive || eo.Set(cmd) {
				text, due, err = eo.Changes(cmd)
				if err != nil {
					return oo.HandleError(err)
				}
			}
			s, err := openStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			id, err := resolveID(cmd, s, io.ID, "Edit which task")
			if err != nil {
				return oo.HandleError(err)
			}
			if text == nil && due == nil {
				if text, due, err = promptEdit(cmd, s, id); err != nil {
					return oo.HandleError(err)
				}
			}

			e := edit.Edit{
				ID:      id,
				Text:    text,
				DueDate: due,
				Store:   s.Tasks,
			}
			return oo.HandleError(e.Do(cmd.Context()))
		},
	}

	options.AddEditArgs(cmd, eo)
	options.AddInteractiveArgs(cmd, i)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
