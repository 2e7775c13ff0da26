package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch [filter]",
		Short: "Print the task list again whenever it changes",
		Example: `
todo watch active
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("expected at most one filter, got %d", len(args))
			}
			return fo.ParseArgs(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			w := watch.Watch{
				Filter:  fo.Filter,
				ShowID:  io.ShowID,
				Key:     s.Config.Key(),
				Backend: s.Backend,
				Store:   s.Tasks,
				Logger:  s.Log,
				Out:     cmd.OutOrStdout(),
			}
			return w.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
