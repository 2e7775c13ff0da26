package commands

import (
	"github.com/charmbracelet/log"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/tasklist"
)

// session is an opened, loaded task store for one command invocation.
type session struct {
	Config  store.Config
	Backend store.Backend
	Tasks   *tasklist.Store
	Log     *log.Logger
}

// openStore reads config, applies flag overrides and loads the task list. A
// corrupt or unreadable stored value is logged and the list starts empty.
func openStore() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	cfg = store.Override(cfg, so.Path, so.Backend)

	logger, err := lo.Logger(cfg.LogLevel())
	if err != nil {
		return nil, err
	}

	b, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened store", "backend", b.Name(), "location", b.Location())

	tasks := tasklist.New(b,
		tasklist.WithKey(cfg.Key()),
		tasklist.WithLogger(logger),
	)
	// Load logs its own degradations.
	_ = tasks.Load()

	return &session{Config: cfg, Backend: b, Tasks: tasks, Log: logger}, nil
}

func (s *session) Close() {
	if err := s.Backend.Close(); err != nil {
		s.Log.Warn("closing store", "err", err)
	}
}
