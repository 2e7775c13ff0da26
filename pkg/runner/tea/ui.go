package teaui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/todo/pkg/glyph"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/tea/internal/theme"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// Options control optional behaviour of the model.
type Options struct {
	// Changes, when set, triggers a reload whenever the stored value is
	// changed by another process.
	Changes <-chan store.Event
	Now     func() time.Time
}

type storeChangedMsg struct{}

// Model is the interactive task list. It owns the raw text of the input
// fields; the store only sees committed values and drafts.
type Model struct {
	store   *tasklist.Store
	changes <-chan store.Event
	now     func() time.Time
	theme   theme.Theme

	mode     mode
	cursor   int
	text     textinput.Model
	due      textinput.Model
	focusDue bool

	status    string
	statusErr bool

	width  int
	height int
}

// New builds the model around s. s should already be loaded.
func New(s *tasklist.Store, opts Options) *Model {
	text := textinput.New()
	text.Placeholder = "What needs doing?"
	text.Prompt = ""
	text.CharLimit = 280

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.Prompt = ""
	due.CharLimit = len("2006-01-02")

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Model{
		store:   s,
		changes: opts.Changes,
		now:     now,
		theme:   theme.Default(),
		text:    text,
		due:     due,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case storeChangedMsg:
		// Reloading would drop an open edit, so only follow outside
		// changes while browsing.
		if m.mode == modeList {
			if err := m.store.Load(); err != nil {
				m.setError(err)
			}
			m.clampCursor()
		}
		return m, m.waitForChange()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.store.VisibleTasks())-1 {
			m.cursor++
		}
	case "tab", "f":
		m.store.SetFilter(m.store.Filter().Next())
		m.clampCursor()
	case "a", "n":
		m.mode = modeAdd
		m.text.Reset()
		m.due.Reset()
		return m, m.focus(false)
	case "e", "enter":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.store.StartEdit(t.ID); err != nil {
			m.setError(err)
			return m, nil
		}
		sess, _ := m.store.Session()
		m.mode = modeEdit
		m.text.SetValue(sess.DraftText)
		m.due.SetValue(sess.DraftDueDate.String())
		return m, m.focus(false)
	case " ", "space", "x":
		if t, ok := m.selected(); ok {
			if _, err := m.store.ToggleDone(t.ID); err != nil {
				m.setError(err)
			}
			m.clampCursor()
		}
	case "d", "delete", "backspace":
		if t, ok := m.selected(); ok {
			if err := m.store.RemoveTask(t.ID); err != nil {
				m.setError(err)
			} else {
				m.setStatus(fmt.Sprintf("removed %q", t.Text))
			}
			m.clampCursor()
		}
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.mode == modeEdit {
			m.store.CancelEdit()
		}
		m.leaveForm()
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab:
		return m, m.focus(!m.focusDue)
	case tea.KeyEnter:
		return m, m.submit()
	}

	var cmd tea.Cmd
	if m.focusDue {
		m.due, cmd = m.due.Update(msg)
	} else {
		m.text, cmd = m.text.Update(msg)
	}
	if m.mode == modeEdit {
		m.pushDraft()
	}
	return m, cmd
}

// pushDraft mirrors the input fields into the store's edit session. An
// unparsable due date is left for submit to report.
func (m *Model) pushDraft() {
	text := m.text.Value()
	u := tasklist.DraftUpdate{Text: &text}
	if d, err := task.ParseDate(m.due.Value()); err == nil {
		u.DueDate = &d
	}
	m.store.UpdateDraft(u)
}

func (m *Model) submit() tea.Cmd {
	due, err := task.ParseDate(m.due.Value())
	if err != nil {
		m.setError(err)
		return m.focus(true)
	}

	switch m.mode {
	case modeAdd:
		t, err := m.store.AddTask(m.text.Value(), due)
		if errors.Is(err, tasklist.ErrValidationRejected) {
			m.setError(err)
			return m.focus(false)
		}
		// The task is in the list now; a storage error is only a warning.
		if err != nil {
			m.setError(err)
		} else {
			m.setStatus(fmt.Sprintf("added %q", t.Text))
		}
		m.text.Reset()
		m.due.Reset()
		return m.focus(false)
	case modeEdit:
		m.pushDraft()
		t, err := m.store.SaveEdit()
		if errors.Is(err, tasklist.ErrValidationRejected) {
			m.setError(err)
			return m.focus(false)
		}
		if err != nil {
			m.setError(err)
		} else {
			m.setStatus(fmt.Sprintf("saved %q", t.Text))
		}
		m.leaveForm()
	}
	return nil
}

func (m *Model) leaveForm() {
	m.mode = modeList
	m.focusDue = false
	m.text.Blur()
	m.due.Blur()
	m.text.Reset()
	m.due.Reset()
	m.clampCursor()
}

func (m *Model) focus(due bool) tea.Cmd {
	m.focusDue = due
	if due {
		m.text.Blur()
		return m.due.Focus()
	}
	m.due.Blur()
	return m.text.Focus()
}

func (m *Model) selected() (task.Task, bool) {
	visible := m.store.VisibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return task.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.store.VisibleTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	m.status, m.statusErr = err.Error(), true
}

// View implements tea.Model.
func (m *Model) View() string {
	th := m.theme
	var b strings.Builder

	b.WriteString(th.Title.Render("todo"))
	b.WriteString("  ")
	for _, f := range task.Filters() {
		style := th.FilterOff
		if f == m.store.Filter() {
			style = th.FilterOn
		}
		b.WriteString(style.Render(f.String()))
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	visible := m.store.VisibleTasks()
	if len(visible) == 0 {
		b.WriteString(th.Empty.Render("  no tasks"))
		b.WriteString("\n")
	}
	sess, editing := m.store.Session()
	now := m.now()
	for i, t := range visible {
		cursor := "  "
		if i == m.cursor && m.mode == modeList {
			cursor = th.Cursor.Render("> ")
		}
		if editing && t.ID == sess.TargetID {
			cursor = th.Cursor.Render("~ ")
		}
		b.WriteString(cursor)
		b.WriteString(m.row(t, now))
		b.WriteString("\n")
	}

	if m.mode != modeList {
		b.WriteString("\n")
		label := "new task"
		if m.mode == modeEdit {
			label = "edit task"
		}
		b.WriteString(m.label(label, !m.focusDue))
		b.WriteString(m.text.View())
		b.WriteString("\n")
		b.WriteString(m.label("due", m.focusDue))
		b.WriteString(m.due.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		style := th.Status
		if m.statusErr {
			style = th.StatusError
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(th.Help.Render(m.help()))
	return b.String()
}

func (m *Model) row(t task.Task, now time.Time) string {
	th := m.theme
	due := glyph.Due(t, now, printers.DefaultDueWindow)

	dueStyle := th.DueLater
	switch due {
	case glyph.Overdue:
		dueStyle = th.Overdue
	case glyph.DueSoon:
		dueStyle = th.DueSoon
	}

	text := t.Text
	if m.width > 0 {
		// cursor, two marks and the due suffix take roughly 24 columns
		if w := m.width - 24; w > 8 {
			text = truncate.StringWithTail(text, uint(w), "…")
		}
	}
	textStyle := th.Text
	if t.Done {
		textStyle = th.DoneText
	}

	line := fmt.Sprintf("%s %s %s", glyph.Status(t), dueStyle.Render(due.String()), textStyle.Render(text))
	if t.HasDueDate() {
		line += dueStyle.Render("  " + t.DueDate.String())
	}
	return line
}

func (m *Model) label(s string, focused bool) string {
	style := m.theme.Label
	if focused {
		style = m.theme.FocusLabel
	}
	return style.Render(fmt.Sprintf("%-10s", s))
}

func (m *Model) help() string {
	if m.mode == modeList {
		return "a add • e edit • space toggle • d delete • tab filter • q quit"
	}
	return "enter save • tab switch field • esc cancel"
}
