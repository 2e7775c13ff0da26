package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Example: `
todo rm 0f3c
todo rm -i
`,
		Args:              idArg(io, i),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			id, err := resolveID(cmd, s, io.ID, "Delete which task")
			if err != nil {
				return oo.HandleError(err)
			}

			r := remove.Remove{
				ID:    id,
				Store: s.Tasks,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddInteractiveArgs(cmd, i)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
