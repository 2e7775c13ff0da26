package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(todo completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(todo completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletionV2(os.Stdout, true)
		},
	}

	topLevel.AddCommand(cmd)
}

// taskCompletions offers the short ids of tasks, described by their text.
func taskCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer s.Close()

	var out []string
	for _, t := range s.Tasks.Tasks() {
		id := t.ID.Short()
		if len(toComplete) > len(id) {
			id = string(t.ID)
		}
		out = append(out, id+"\t"+t.Text)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
