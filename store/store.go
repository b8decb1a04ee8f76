// Package store provides key-value backends for persisting the active
// theme selection.
package store

import "sync"

// Memory is an in-process Store. It satisfies palette.Store and is safe
// for concurrent use, which keeps tests that share one across goroutines
// honest.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value under key, or "" when absent.
func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
