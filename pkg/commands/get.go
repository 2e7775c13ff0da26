package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/get"
	"tableflip.dev/todo/pkg/task"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	validArgs := make([]string, 0, len(task.Filters()))
	for _, f := range task.Filters() {
		validArgs = append(validArgs, f.String())
	}

	long := strings.Builder{}
	long.WriteString("List all tasks, or only the active or completed ones.\n\n")
	long.WriteString(fmt.Sprintf("Filters: %s\n", strings.Join(validArgs, ", ")))

	cmd := &cobra.Command{
		Use:     "get [filter]",
		Aliases: []string{"ls", "list"},
		Short:   "List tasks",
		Long:    long.String(),
		Example: `
todo get
todo get active --show-id
todo get --due-within 3d
todo get completed --json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("expected at most one filter, got %d", len(args))
			}
			return fo.ParseArgs(args)
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, err := fo.Window(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			g := get.Get{
				Filter:    fo.Filter,
				ShowID:    io.ShowID,
				Wide:      fo.Wide,
				JSON:      oo.JSON,
				DueWithin: window,
				Store:     s.Tasks,
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddDueWithinArgs(cmd, fo)
	options.AddWideArgs(cmd, fo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
