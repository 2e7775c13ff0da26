package teaui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

func newModel(t *testing.T, texts ...string) (*Model, *tasklist.Store) {
	t.Helper()
	n := 0
	s := tasklist.New(store.NewMemory(), tasklist.WithIDSource(func() task.ID {
		n++
		return task.ID(fmt.Sprintf("t%d", n))
	}))
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for _, text := range texts {
		if _, err := s.AddTask(text, task.Date{}); err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
	}
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	return New(s, Options{Now: func() time.Time { return now }}), s
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestAddThroughForm(t *testing.T) {
	m, s := newModel(t)

	press(m, "a", "Buy milk", "tab", "2025-06-03", "enter", "esc")

	tasks := s.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Text != "Buy milk" || tasks[0].DueDate != task.MustParseDate("2025-06-03") {
		t.Fatalf("unexpected task %+v", tasks[0])
	}
	if m.mode != modeList {
		t.Fatalf("expected list mode after esc")
	}
}

func TestAddBlankIsRejected(t *testing.T) {
	m, s := newModel(t)

	press(m, "a", "   ", "enter")

	if len(s.Tasks()) != 0 {
		t.Fatalf("expected blank text to be rejected")
	}
	if !m.statusErr {
		t.Fatalf("expected an error status")
	}
	if m.mode != modeAdd {
		t.Fatalf("expected the form to stay open")
	}
}

func TestToggleAndFilter(t *testing.T) {
	m, s := newModel(t, "one", "two")

	press(m, "down", "space")
	if got, _ := s.Get("t2"); !got.Done {
		t.Fatalf("expected t2 to be done")
	}

	press(m, "tab")
	if s.Filter() != task.Active {
		t.Fatalf("expected active filter, got %v", s.Filter())
	}
	if m.cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m.cursor)
	}
	if view := m.View(); strings.Contains(view, "two") {
		t.Fatalf("completed task shown under active filter:\n%s", view)
	}
}

func TestEditSavesDraft(t *testing.T) {
	m, s := newModel(t, "Call mum")

	press(m, "e")
	if sess, ok := s.Session(); !ok || sess.TargetID != "t1" {
		t.Fatalf("expected an edit session on t1")
	}
	press(m, " back")
	if sess, _ := s.Session(); sess.DraftText != "Call mum back" {
		t.Fatalf("expected draft to follow input, got %q", sess.DraftText)
	}
	if got, _ := s.Get("t1"); got.Text != "Call mum" {
		t.Fatalf("draft leaked into the committed task: %q", got.Text)
	}

	press(m, "enter")
	if got, _ := s.Get("t1"); got.Text != "Call mum back" {
		t.Fatalf("expected saved text, got %q", got.Text)
	}
	if _, ok := s.Session(); ok {
		t.Fatalf("expected session closed after save")
	}
}

func TestEditCancel(t *testing.T) {
	m, s := newModel(t, "Call mum")

	press(m, "e", "!!!", "esc")

	if got, _ := s.Get("t1"); got.Text != "Call mum" {
		t.Fatalf("cancelled edit changed text to %q", got.Text)
	}
	if _, ok := s.Session(); ok {
		t.Fatalf("expected session closed after cancel")
	}
}

func TestDeleteClampsCursor(t *testing.T) {
	m, s := newModel(t, "one", "two")

	press(m, "down", "d")
	if len(s.Tasks()) != 1 {
		t.Fatalf("expected 1 task left, got %d", len(s.Tasks()))
	}
	if m.cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", m.cursor)
	}
	press(m, "d")
	if len(s.Tasks()) != 0 {
		t.Fatalf("expected empty list")
	}
	if !strings.Contains(m.View(), "no tasks") {
		t.Fatalf("expected empty view")
	}
}

func TestReloadOnlyWhileBrowsing(t *testing.T) {
	m, s := newModel(t, "one")

	press(m, "e")
	m.Update(storeChangedMsg{})
	if _, ok := s.Session(); !ok {
		t.Fatalf("outside change dropped the open edit")
	}

	press(m, "esc")
	m.Update(storeChangedMsg{})
	if len(s.Tasks()) != 1 {
		t.Fatalf("expected reload to keep the saved task")
	}
}
