package task

import (
	"fmt"
	"strings"
)

// Filter selects which tasks are shown. It never changes the tasks.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

// Filters lists every filter in display order.
func Filters() []Filter {
	return []Filter{All, Active, Completed}
}

func (f Filter) String() string {
	switch f {
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return "all"
	}
}

// Next cycles All -> Active -> Completed -> All.
func (f Filter) Next() Filter {
	return (f + 1) % 3
}

// Match reports whether t is visible under f.
func (f Filter) Match(t Task) bool {
	switch f {
	case Active:
		return !t.Done
	case Completed:
		return t.Done
	default:
		return true
	}
}

// ParseFilter accepts a filter name or one of its aliases.
func ParseFilter(v string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "all", "any":
		return All, nil
	case "active", "open", "todo":
		return Active, nil
	case "completed", "complete", "done":
		return Completed, nil
	}
	return All, fmt.Errorf("task: unknown filter %q, expected one of all, active, completed", v)
}

// Apply returns the ordered subsequence of tasks matching f. The input is not
// modified.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
