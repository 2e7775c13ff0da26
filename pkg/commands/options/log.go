package options

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

// LogOptions
type LogOptions struct {
	Level string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().StringVar(&o.Level, "log-level", "",
		base.Wrap80("Log level, one of debug, info, warn or error. Defaults to the log_level config value."))
}

// Logger returns a stderr logger at the flag level, or fallback when the flag
// is unset.
func (o *LogOptions) Logger(fallback string) (*log.Logger, error) {
	level := o.Level
	if level == "" {
		level = fallback
	}
	l := log.NewWithOptions(os.Stderr, log.Options{Prefix: "todo"})
	if level == "" {
		l.SetLevel(log.WarnLevel)
		return l, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l.SetLevel(lvl)
	return l, nil
}
