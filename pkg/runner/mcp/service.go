// Package mcp provides the Model Context Protocol server integration for todo.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

// Service serializes access to a task store for concurrently dispatched MCP
// handlers.
type Service struct {
	mu    sync.Mutex
	store *tasklist.Store
}

// TaskDTO is a transport-friendly projection of a task.
type TaskDTO struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	DueDate string `json:"dueDate,omitempty"`
	Done    bool   `json:"done"`
}

// Result carries the task touched by a mutation plus a storage warning, if
// the change could not be saved.
type Result struct {
	Task    *TaskDTO `json:"task,omitempty"`
	Removed string   `json:"removed,omitempty"`
	Warning string   `json:"warning,omitempty"`
}

// EditOptions holds the fields of an edit. Nil fields are unchanged.
type EditOptions struct {
	ID       string
	Text     *string
	DueDate  *string
	ClearDue bool
}

// NewService wraps s. s should already be loaded.
func NewService(s *tasklist.Store) *Service {
	return &Service{store: s}
}

// ListTasks returns the tasks matching filter in list order.
func (s *Service) ListTasks(ctx context.Context, filter string) ([]TaskDTO, error) {
	f, err := task.ParseFilter(filter)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return toDTOs(f.Apply(s.store.Tasks())), nil
}

// AddTask appends a new open task.
func (s *Service) AddTask(ctx context.Context, text, due string) (*Result, error) {
	d, err := task.ParseDate(due)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.store.AddTask(text, d)
	if err := warning(err); err != nil {
		return nil, err
	}
	return result(t, err), nil
}

// ToggleTask flips the completion flag of the task id refers to.
func (s *Service) ToggleTask(ctx context.Context, id string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.store.Resolve(id)
	if err != nil {
		return nil, err
	}
	t, err := s.store.ToggleDone(found.ID)
	if err := warning(err); err != nil {
		return nil, err
	}
	return result(t, err), nil
}

// RemoveTask deletes the task id refers to.
func (s *Service) RemoveTask(ctx context.Context, id string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.store.Resolve(id)
	if err != nil {
		return nil, err
	}
	err = s.store.RemoveTask(found.ID)
	if err := warning(err); err != nil {
		return nil, err
	}
	r := &Result{Removed: string(found.ID)}
	if err != nil {
		r.Warning = err.Error()
	}
	return r, nil
}

// EditTask changes the text and due date of a task in one edit session.
func (s *Service) EditTask(ctx context.Context, opts EditOptions) (*Result, error) {
	var u tasklist.DraftUpdate
	u.Text = opts.Text
	switch {
	case opts.ClearDue:
		u.DueDate = &task.Date{}
	case opts.DueDate != nil:
		d, err := task.ParseDate(*opts.DueDate)
		if err != nil {
			return nil, err
		}
		u.DueDate = &d
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.store.Resolve(opts.ID)
	if err != nil {
		return nil, err
	}
	if err := s.store.StartEdit(found.ID); err != nil {
		return nil, err
	}
	s.store.UpdateDraft(u)
	t, err := s.store.SaveEdit()
	if errors.Is(err, tasklist.ErrValidationRejected) {
		s.store.CancelEdit()
		return nil, fmt.Errorf("%w: text must not be blank", err)
	}
	if err := warning(err); err != nil {
		return nil, err
	}
	return result(t, err), nil
}

// warning returns err unless it only reports that a change was kept in
// memory but not saved.
func warning(err error) error {
	if err == nil || tasklist.IsWarning(err) {
		return nil
	}
	return err
}

func result(t task.Task, err error) *Result {
	dto := toDTO(t)
	r := &Result{Task: &dto}
	if err != nil {
		r.Warning = err.Error()
	}
	return r
}

func toDTOs(tasks []task.Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toDTO(t))
	}
	return out
}

func toDTO(t task.Task) TaskDTO {
	dto := TaskDTO{
		ID:   string(t.ID),
		Text: t.Text,
		Done: t.Done,
	}
	if t.HasDueDate() {
		dto.DueDate = t.DueDate.String()
	}
	return dto
}
