// Package printers renders tasks for terminals and export formats.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"sigs.k8s.io/yaml"

	"tableflip.dev/todo/pkg/task"
)

// Formats lists the supported export formats.
var Formats = []string{"json", "yaml", "toml"}

type tomlTask struct {
	ID      string `toml:"id"`
	Text    string `toml:"text"`
	DueDate string `toml:"due_date,omitempty"`
	Done    bool   `toml:"done"`
}

type tomlDoc struct {
	Tasks []tomlTask `toml:"tasks"`
}

// Export writes tasks to w in the given format.
func Export(w io.Writer, format string, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		b, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml", "yml":
		b, err := yaml.Marshal(tasks)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "toml":
		doc := tomlDoc{Tasks: make([]tomlTask, 0, len(tasks))}
		for _, t := range tasks {
			doc.Tasks = append(doc.Tasks, tomlTask{
				ID:      string(t.ID),
				Text:    t.Text,
				DueDate: t.DueDate.String(),
				Done:    t.Done,
			})
		}
		return toml.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("printers: unknown format %q, expected one of %s", format, strings.Join(Formats, ", "))
}
