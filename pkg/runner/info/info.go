// Package info reports where tasks are stored.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

type Info struct {
	Config  store.Config
	Backend store.Backend
	Store   *tasklist.Store
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = printers.Stdout()
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Backend == nil {
		return fmt.Errorf("failed to open the task store")
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		tbl.AddRow("TODO_CONFIG_PATH:", override)
	} else {
		tbl.AddRow("TODO_CONFIG_PATH:", "(not set)")
	}
	if file := store.ConfigFile(n.Config); file != "" {
		tbl.AddRow("Config file:", file)
	} else {
		tbl.AddRow("Config file:", "(none, using defaults)")
	}
	tbl.AddRow("Backend:", n.Backend.Name())
	tbl.AddRow("Location:", n.Backend.Location())
	tbl.AddRow("Key:", n.Config.Key())

	if n.Store != nil {
		tasks := n.Store.Tasks()
		tbl.AddRow("Tasks:", len(tasks))
		tbl.AddRow("Active:", len(task.Active.Apply(tasks)))
		tbl.AddRow("Completed:", len(task.Completed.Apply(tasks)))
	}

	_, err := fmt.Fprintln(out, tbl)
	return err
}
