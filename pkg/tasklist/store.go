// Package tasklist owns the ordered task list, the single in-progress edit and
// the active filter, and writes the list through to a durable blob after
// every change.
//
// A Store is not safe for concurrent use.
package tasklist

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

// EditSession is an uncommitted edit of one task.
type EditSession struct {
	TargetID     task.ID
	DraftText    string
	DraftDueDate task.Date
}

// DraftUpdate changes the open session's drafts. Nil fields are left alone;
// a pointer to the zero Date clears the due date.
type DraftUpdate struct {
	Text    *string
	DueDate *task.Date
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the blob key tasks are stored under.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithIDSource replaces the id generator.
func WithIDSource(next func() task.ID) Option {
	return func(s *Store) {
		if next != nil {
			s.newID = next
		}
	}
}

// WithLogger sets the logger for load degradations and persist failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store is the task list state.
type Store struct {
	blob  store.Blob
	key   string
	newID func() task.ID
	log   *log.Logger

	// tasks is replaced, never written in place, so slices handed out
	// earlier keep describing the version they were taken from.
	tasks    []task.Task
	session  *EditSession
	filter   task.Filter
	revision uint64
}

// New creates an empty store backed by blob. Call Load to read saved tasks.
func New(blob store.Blob, opts ...Option) *Store {
	s := &Store{
		blob:  blob,
		key:   store.DefaultKey,
		newID: task.NewID,
		log:   log.New(io.Discard),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the list with the stored one and closes any edit session. An
// absent value yields an empty list. If the value cannot be read or decoded
// the list is also left empty and the error (ErrStorageUnavailable or
// ErrStorageCorrupt) is returned; the store stays usable.
func (s *Store) Load() error {
	s.tasks = nil
	s.session = nil
	s.revision++

	data, err := s.blob.Read(s.key)
	if errors.Is(err, store.ErrNotFound) {
		s.log.Debug("no stored tasks, starting empty", "key", s.key)
		return nil
	}
	if err != nil {
		s.log.Warn("could not read tasks, starting empty", "key", s.key, "err", err)
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	tasks, err := Decode(data)
	if err != nil {
		s.log.Warn("discarding unreadable tasks, starting empty", "key", s.key, "err", err)
		return err
	}
	s.tasks = tasks
	s.log.Debug("loaded tasks", "key", s.key, "count", len(tasks))
	return nil
}

// Persist writes the whole list to the blob.
func (s *Store) Persist() error {
	data, err := Encode(s.tasks)
	if err != nil {
		return fmt.Errorf("tasklist: encode: %w", err)
	}
	if err := s.blob.Write(s.key, data); err != nil {
		s.log.Warn("could not save tasks, keeping changes in memory", "key", s.key, "err", err)
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// commit installs next as the current list and persists it.
func (s *Store) commit(next []task.Task) error {
	s.tasks = next
	s.revision++
	return s.Persist()
}

// AddTask appends an open task. Blank text is rejected with
// ErrValidationRejected and nothing changes. A returned error wrapping
// ErrStorageUnavailable means the task was added but not saved.
func (s *Store) AddTask(text string, due task.Date) (task.Task, error) {
	if task.Blank(text) {
		return task.Task{}, ErrValidationRejected
	}
	id := s.newID()
	if s.index(id) >= 0 {
		return task.Task{}, fmt.Errorf("tasklist: id %s already in use", id)
	}
	t := task.New(id, text, due)

	next := make([]task.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	next = append(next, t)

	s.log.Debug("add", "id", t.ID, "text", t.Text, "due", t.DueDate)
	return t, s.commit(next)
}

// ToggleDone flips the completion flag of id.
func (s *Store) ToggleDone(id task.ID) (task.Task, error) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, ErrTaskNotFound
	}
	next := slices.Clone(s.tasks)
	next[i].Done = !next[i].Done

	s.log.Debug("toggle", "id", id, "done", next[i].Done)
	return next[i], s.commit(next)
}

// RemoveTask deletes id. An edit session targeting id is discarded.
func (s *Store) RemoveTask(id task.ID) error {
	i := s.index(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	next := make([]task.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)

	if s.session != nil && s.session.TargetID == id {
		s.session = nil
	}
	s.log.Debug("remove", "id", id)
	return s.commit(next)
}

// StartEdit opens an edit session on id seeded from its committed values. Any
// open session is discarded unsaved. For an unknown id the current session is
// kept and ErrTaskNotFound returned.
func (s *Store) StartEdit(id task.ID) error {
	i := s.index(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	t := s.tasks[i]
	s.session = &EditSession{
		TargetID:     t.ID,
		DraftText:    t.Text,
		DraftDueDate: t.DueDate,
	}
	return nil
}

// UpdateDraft changes the drafts of the open session. Without a session it
// does nothing.
func (s *Store) UpdateDraft(u DraftUpdate) {
	if s.session == nil {
		return
	}
	next := *s.session
	if u.Text != nil {
		next.DraftText = *u.Text
	}
	if u.DueDate != nil {
		next.DraftDueDate = *u.DueDate
	}
	s.session = &next
}

// SaveEdit commits the open session. Without a session it does nothing. A
// blank draft returns ErrValidationRejected and leaves the session open so the
// draft can be corrected.
func (s *Store) SaveEdit() (task.Task, error) {
	if s.session == nil {
		return task.Task{}, nil
	}
	if task.Blank(s.session.DraftText) {
		return task.Task{}, ErrValidationRejected
	}
	sess := *s.session
	i := s.index(sess.TargetID)
	if i < 0 {
		s.session = nil
		return task.Task{}, ErrTaskNotFound
	}

	next := slices.Clone(s.tasks)
	next[i].Text = strings.TrimSpace(sess.DraftText)
	next[i].DueDate = sess.DraftDueDate
	s.session = nil

	s.log.Debug("save edit", "id", sess.TargetID, "text", next[i].Text, "due", next[i].DueDate)
	return next[i], s.commit(next)
}

// CancelEdit discards the open session, if any.
func (s *Store) CancelEdit() {
	s.session = nil
}

// Session returns the open edit session.
func (s *Store) Session() (EditSession, bool) {
	if s.session == nil {
		return EditSession{}, false
	}
	return *s.session, true
}

// SetFilter changes which tasks VisibleTasks returns.
func (s *Store) SetFilter(f task.Filter) {
	s.filter = f
}

// Filter returns the filter VisibleTasks applies.
func (s *Store) Filter() task.Filter {
	return s.filter
}

// VisibleTasks returns the tasks matching the current filter, in list order.
func (s *Store) VisibleTasks() []task.Task {
	return s.filter.Apply(s.tasks)
}

// Tasks returns the full list in insertion order.
func (s *Store) Tasks() []task.Task {
	return slices.Clone(s.tasks)
}

// Revision increases every time the committed list is replaced.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Get returns the task with the given id.
func (s *Store) Get(id task.ID) (task.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, false
	}
	return s.tasks[i], true
}

// Resolve finds a task by full id or unique id prefix.
func (s *Store) Resolve(prefix string) (task.Task, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return task.Task{}, ErrTaskNotFound
	}
	if t, ok := s.Get(task.ID(prefix)); ok {
		return t, nil
	}
	var (
		found task.Task
		n     int
	)
	for _, t := range s.tasks {
		if strings.HasPrefix(string(t.ID), prefix) {
			found = t
			n++
		}
	}
	switch n {
	case 0:
		return task.Task{}, ErrTaskNotFound
	case 1:
		return found, nil
	}
	return task.Task{}, fmt.Errorf("%w: %q matches %d tasks", ErrAmbiguousID, prefix, n)
}

func (s *Store) index(id task.ID) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
}
