package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Example: `
todo add buy milk
todo add call the plumber --due 2025-06-01
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the task text")
			}
			ao.Text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			due, err := ao.GetDue()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			a := add.Add{
				Text:    ao.Text,
				DueDate: due,
				ShowID:  io.ShowID,
				Store:   s.Tasks,
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddDueArgs(cmd, ao)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
