package storage

import "context"

// Memory is an in-memory Store used by tests and as a fallback when no
// database path can be resolved.
type Memory struct {
	entries map[string]string
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.entries[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.entries = make(map[string]string)
	return nil
}

func (m *Memory) Close() error {
	return nil
}

// Len returns the number of stored records.
func (m *Memory) Len() int {
	return len(m.entries)
}
