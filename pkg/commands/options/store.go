package options

import (
	"github.com/spf13/cobra"
)

// StoreOptions override where tasks are stored for one invocation.
type StoreOptions struct {
	Path    string
	Backend string
}

func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Directory holding the task store. Overrides the path config value.")
	cmd.PersistentFlags().StringVar(&o.Backend, "backend", "",
		"Storage backend, one of diskv, sqlite or memory. Overrides the backend config value.")
}
