package get

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

func seeded(t *testing.T) *tasklist.Store {
	t.Helper()
	n := 0
	s := tasklist.New(store.NewMemory(), tasklist.WithIDSource(func() task.ID {
		n++
		return task.ID(fmt.Sprintf("t%d", n))
	}))
	for _, in := range []struct {
		text string
		due  string
	}{
		{"overdue", "2025-05-30"},
		{"today", "2025-06-01"},
		{"next week", "2025-06-08"},
		{"someday", ""},
	} {
		if _, err := s.AddTask(in.text, task.MustParseDate(in.due)); err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
	}
	if _, err := s.ToggleDone("t2"); err != nil {
		t.Fatalf("ToggleDone failed: %v", err)
	}
	return s
}

func texts(t *testing.T, out []byte) []string {
	t.Helper()
	var got []task.Task
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out)
	}
	s := make([]string, 0, len(got))
	for _, g := range got {
		s = append(s, g.Text)
	}
	return s
}

func TestGet(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	today := time.Duration(0)
	week := 7 * 24 * time.Hour

	tests := map[string]struct {
		filter task.Filter
		within *time.Duration
		want   []string
	}{
		"all":              {filter: task.All, want: []string{"overdue", "today", "next week", "someday"}},
		"active":           {filter: task.Active, want: []string{"overdue", "next week", "someday"}},
		"completed":        {filter: task.Completed, want: []string{"today"}},
		"due today":        {filter: task.All, within: &today, want: []string{"overdue", "today"}},
		"active this week": {filter: task.Active, within: &week, want: []string{"overdue", "next week"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			g := Get{
				Filter:    tc.filter,
				JSON:      true,
				DueWithin: tc.within,
				Now:       now,
				Store:     seeded(t),
				Out:       &out,
			}
			if err := g.Do(context.Background()); err != nil {
				t.Fatalf("Do failed: %v", err)
			}
			got := texts(t, out.Bytes())
			if fmt.Sprint(got) != fmt.Sprint(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
