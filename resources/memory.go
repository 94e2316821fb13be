package resources

import "sync"

// Memory is an in-memory backend. It is always writable.
type Memory struct {
	mu      sync.Mutex
	data    map[string][]byte
	changed []string
}

// NewMemory creates a memory backend holding a copy of files.
func NewMemory(files map[string][]byte) *Memory {
	m := &Memory{data: make(map[string][]byte, len(files))}
	for k, v := range files {
		m.data[k] = append([]byte(nil), v...)
	}
	return m
}

func (m *Memory) Exists(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	m.changed = append(m.changed, key)
	return nil
}

func (m *Memory) Notify(fn func(key string)) {
	m.mu.Lock()
	changed := m.changed
	m.changed = nil
	m.mu.Unlock()
	for _, k := range changed {
		fn(k)
	}
}

func (m *Memory) Close() error { return nil }
