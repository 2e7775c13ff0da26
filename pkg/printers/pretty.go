package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/todo/pkg/glyph"
	"tableflip.dev/todo/pkg/task"
)

// DefaultDueWindow is how far ahead a due date is highlighted.
const DefaultDueWindow = 3 * 24 * time.Hour

type PrettyPrint struct {
	ShowID bool
	// Width wraps task text when positive.
	Width int
	// Now and Window decide overdue and due-soon marks. Zero values mean
	// time.Now() and DefaultDueWindow.
	Now    time.Time
	Window time.Duration
	Out    io.Writer
}

var (
	spacing = strings.Repeat(" ", len("0f3c9a1b  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

func (pp *PrettyPrint) window() time.Duration {
	if pp.Window == 0 {
		return DefaultDueWindow
	}
	return pp.Window
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// Tasks prints one line per task: marks, text and due date.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	w := pp.out()
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	plain := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	dueColor := map[glyph.Mark]*color.Color{
		glyph.Overdue: color.New(color.FgRed, color.Bold),
		glyph.DueSoon: color.New(color.FgYellow),
		glyph.NoDue:   color.New(color.Faint),
	}

	// Continuation lines line up under the text column.
	indent := "\n" + strings.Repeat(" ", len("● ! "))
	if pp.ShowID {
		indent += spacing
	}

	now, window := pp.now(), pp.window()
	for _, t := range tasks {
		if pp.ShowID {
			id := t.ID.Short()
			_, _ = y.Fprint(w, id)
			_, _ = y.Fprint(w, strings.Repeat(" ", max(len(spacing)-len(id), 1)))
		}
		due := glyph.Due(t, now, window)
		_, _ = plain.Fprintf(w, "%s ", glyph.Status(t))
		_, _ = dueColor[due].Fprintf(w, "%s ", due)

		text := t.Text
		if pp.Width > 0 {
			text = strings.ReplaceAll(wordwrap.String(text, pp.Width), "\n", indent)
		}
		if t.Done {
			_, _ = done.Fprint(w, text)
		} else {
			_, _ = plain.Fprint(w, text)
		}
		if t.HasDueDate() {
			_, _ = dueColor[due].Fprintf(w, "  (due %s)", t.DueDate)
		}
		_, _ = fmt.Fprintln(w)
	}
	_, _ = fmt.Fprintln(w)
}

// Stdout is the colour-aware standard output writer.
func Stdout() io.Writer {
	return color.Output
}
