package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/toggle"
)

func addDone(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle", "complete"},
		Short:   "Mark a task completed, or open again",
		Example: `
todo done 0f3c
todo done -i
`,
		Args:              idArg(io, i),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			id, err := resolveID(cmd, s, io.ID, "Toggle which task")
			if err != nil {
				return oo.HandleError(err)
			}

			t := toggle.Toggle{
				ID:    id,
				Store: s.Tasks,
			}
			return oo.HandleError(t.Do(cmd.Context()))
		},
	}

	options.AddInteractiveArgs(cmd, i)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
