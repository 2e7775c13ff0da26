package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/glyph"
	"tableflip.dev/todo/pkg/task"
)

// Table prints tasks as aligned columns with full ids.
func Table(w io.Writer, tasks []task.Task) {
	if w == nil {
		w = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("DONE"), bold.Sprint("DUE"), bold.Sprint("TEXT"))
	for _, t := range tasks {
		tbl.AddRow(t.ID, glyph.Status(t), t.DueDate, t.Text)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// Legend prints what each mark means.
func Legend(w io.Writer) {
	if w == nil {
		w = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mark"), bold.Sprint("Meaning"), bold.Sprint("Filter"))
	for _, m := range glyph.Marks() {
		g := m.Glyph()
		tbl.AddRow(g.Symbol, g.Meaning, strings.Join(g.Aliases, ", "))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
}
