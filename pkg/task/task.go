// Package task holds the task data model shared by the store, printers and
// runners.
package task

import (
	"strings"

	"github.com/google/uuid"
)

// ID identifies a task for its whole lifetime. IDs are never reused.
type ID string

// NewID returns a fresh random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Short returns the display form of the id.
func (id ID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

func (id ID) String() string {
	return string(id)
}

// Task is a single to-do item. It is a value type: the store hands out copies
// and replaces tasks wholesale when they change.
type Task struct {
	ID      ID     `json:"id"`
	Text    string `json:"text"`
	DueDate Date   `json:"dueDate,omitzero"`
	Done    bool   `json:"done"`
}

// New creates an open task with trimmed text.
func New(id ID, text string, due Date) Task {
	return Task{
		ID:      id,
		Text:    strings.TrimSpace(text),
		DueDate: due,
	}
}

// Blank reports whether text is empty once surrounding whitespace is removed.
func Blank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// HasDueDate reports whether a due date is set.
func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}
