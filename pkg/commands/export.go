package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var (
		format string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every task as json, yaml or toml",
		Example: `
todo export --format yaml
todo export --format toml --file tasks.toml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if !slices.Contains(printers.Formats, format) {
				return fmt.Errorf("unknown format %q, expected one of %s", format, strings.Join(printers.Formats, ", "))
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			e := export.Export{
				Format: format,
				File:   file,
				Store:  s.Tasks,
				Out:    cmd.OutOrStdout(),
			}
			return e.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&format, "format", "json",
		fmt.Sprintf("Output format. One of %s.", strings.Join(printers.Formats, ", ")))
	cmd.Flags().StringVarP(&file, "file", "f", "", "Write to a file instead of stdout.")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(printers.Formats, cobra.ShellCompDirectiveNoFileComp))

	topLevel.AddCommand(cmd)
}
