// Package snake prompts for tasks and task fields on an interactive terminal.
package snake

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/todo/pkg/glyph"
	"tableflip.dev/todo/pkg/task"
)

// ErrNoTasks is returned by Task when there is nothing to choose from.
var ErrNoTasks = errors.New("snake: no tasks to choose from")

// IO is where prompts read keys and draw.
type IO struct {
	In  io.Reader
	Out io.Writer
}

type item struct {
	Short string
	Mark  string
	Text  string
	Due   string
}

// Task asks the user to pick one of tasks. Typing narrows the list by text.
func Task(rw IO, label string, tasks []task.Task) (task.Task, error) {
	if len(tasks) == 0 {
		return task.Task{}, ErrNoTasks
	}
	items := make([]item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, item{
			Short: t.ID.Short(),
			Mark:  glyph.Status(t).String(),
			Text:  t.Text,
			Due:   t.DueDate.String(),
		})
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Mark }} {{ .Text | bold }} {{ .Due | cyan }}",
		Inactive: "   {{ .Mark }} {{ .Text }} {{ .Due | faint }}",
		Selected: "{{ .Mark }} {{ .Text | bold }}",
		Details: `
--------- Task ----------
{{ "id:" | faint }}	{{ .Short }}
{{ "due:" | faint }}	{{ .Due }}
`,
	}

	searcher := func(input string, index int) bool {
		text := strings.ReplaceAll(strings.ToLower(items[index].Text), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(text, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(rw.In),
		Stdout:    NopCloser(rw.Out),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return task.Task{}, err
	}
	return tasks[i], nil
}

// Text asks for a task text, pre-filled with def. Blank input is refused.
func Text(rw IO, label, def string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Validate: func(s string) error {
			if task.Blank(s) {
				return errors.New("text must not be blank")
			}
			return nil
		},
		Stdin:  io.NopCloser(rw.In),
		Stdout: NopCloser(rw.Out),
	}
	return prompt.Run()
}

// Due asks for a due date, pre-filled with def. Empty input means no date.
func Due(rw IO, label string, def task.Date) (task.Date, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def.String(),
		AllowEdit: true,
		Validate: func(s string) error {
			_, err := task.ParseDate(s)
			return err
		},
		Stdin:  io.NopCloser(rw.In),
		Stdout: NopCloser(rw.Out),
	}
	s, err := prompt.Run()
	if err != nil {
		return task.Date{}, err
	}
	return task.ParseDate(s)
}
