package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where tasks are stored.",
		Example: `
todo info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			i := info.Info{
				Config:  s.Config,
				Backend: s.Backend,
				Store:   s.Tasks,
				Out:     cmd.OutOrStdout(),
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
