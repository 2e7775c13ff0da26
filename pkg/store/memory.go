package store

import "sync"

// Memory is a map-backed Blob. FailReads and FailWrites, when set, are
// returned instead of touching the map.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte

	FailReads  error
	FailWrites error

	writes int
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Write(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.data[key] = append([]byte(nil), value...)
	m.writes++
	return nil
}

// Writes counts successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) Name() string {
	return BackendMemory
}

func (m *Memory) Location() string {
	return "(in memory)"
}
