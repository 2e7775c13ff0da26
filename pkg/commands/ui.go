package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	teaui "tableflip.dev/todo/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive task list",
		Example: `
todo ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return errors.New("todo ui needs a terminal, try todo get")
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			u := teaui.UI{
				Store:   s.Tasks,
				Backend: s.Backend,
				Key:     s.Config.Key(),
				Logger:  s.Log,
			}
			return u.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
