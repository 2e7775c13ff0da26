// Package glyph defines the symbols used to render task state.
package glyph

import (
	"time"

	"tableflip.dev/todo/pkg/task"
)

type Glyph struct {
	Symbol  string
	Meaning string
	Aliases []string
}

func (g Glyph) String() string {
	return g.Symbol
}

// Mark is a rendered aspect of a task: its completion state or its due state.
type Mark int

const (
	Open Mark = iota
	Done
	Overdue
	DueSoon
	NoDue
)

var glyphs = map[Mark]Glyph{
	Open:    {Symbol: "●", Meaning: "task", Aliases: []string{"open", "active", "todo"}},
	Done:    {Symbol: "✘", Meaning: "task completed", Aliases: []string{"done", "completed"}},
	Overdue: {Symbol: "!", Meaning: "past its due date"},
	DueSoon: {Symbol: "›", Meaning: "due within the window"},
	NoDue:   {Symbol: " ", Meaning: "no due date, or due later"},
}

// Marks lists every mark in legend order.
func Marks() []Mark {
	return []Mark{Open, Done, Overdue, DueSoon, NoDue}
}

func (m Mark) Glyph() Glyph {
	return glyphs[m]
}

func (m Mark) String() string {
	return glyphs[m].Symbol
}

// Status is the completion mark for t.
func Status(t task.Task) Mark {
	if t.Done {
		return Done
	}
	return Open
}

// Due is the due-date mark for t relative to now. Done tasks are never
// overdue.
func Due(t task.Task, now time.Time, window time.Duration) Mark {
	switch {
	case t.Done || !t.HasDueDate():
		return NoDue
	case t.DueDate.Before(now):
		return Overdue
	case t.DueDate.Within(now, window):
		return DueSoon
	}
	return NoDue
}
