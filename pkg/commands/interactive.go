package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/snake"
	"tableflip.dev/todo/pkg/task"
)

func promptIO(cmd *cobra.Command) snake.IO {
	return snake.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
}

// idArg reads the task id argument, which may be omitted with --interactive.
func idArg(io *options.IDOptions, i *options.InteractiveOptions) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		switch {
		case len(args) == 1:
			io.ID = args[0]
			return nil
		case len(args) == 0 && i.Interactive:
			return nil
		}
		return errors.New("requires a task id")
	}
}

// resolveID returns the id from the command line or, when there is none,
// asks the user to pick a task.
func resolveID(cmd *cobra.Command, s *session, id, label string) (string, error) {
	if id != "" {
		return id, nil
	}
	t, err := snake.Task(promptIO(cmd), label, s.Tasks.Tasks())
	if err != nil {
		return "", err
	}
	return string(t.ID), nil
}

// promptEdit asks for new text and due date seeded from the task id refers to.
func promptEdit(cmd *cobra.Command, s *session, id string) (*string, *task.Date, error) {
	t, err := s.Tasks.Resolve(id)
	if err != nil {
		return nil, nil, err
	}
	text, err := snake.Text(promptIO(cmd), "Text", t.Text)
	if err != nil {
		return nil, nil, err
	}
	due, err := snake.Due(promptIO(cmd), "Due (YYYY-MM-DD)", t.DueDate)
	if err != nil {
		return nil, nil, err
	}
	return &text, &due, nil
}
