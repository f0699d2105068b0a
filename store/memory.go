// Package store holds definition objects in memory, keyed by id.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"def-modifier/internal/diagnostic"
)

// Memory is a map-backed definition repository.
type Memory struct {
	mu   sync.RWMutex
	defs map[string]any
}

// NewMemory creates an empty repository.
func NewMemory() *Memory {
	return &Memory{
		defs: make(map[string]any),
	}
}

// Add registers def under id. Defs are patched in place, so def should be
// a pointer or a map.
func (m *Memory) Add(id string, def any) error {
	if id == "" {
		return errors.New("empty definition id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.defs[id]; ok {
		return fmt.Errorf("definition %q already exists", id)
	}

	m.defs[id] = def

	return nil
}

// GetDef returns the definition registered under id.
func (m *Memory) GetDef(id string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	def, ok := m.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: definition %q", diagnostic.ErrNotFound, id)
	}

	return def, nil
}

// IDs returns all ids, sorted.
func (m *Memory) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.defs))
	for id := range m.defs {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Snapshot returns a new map holding every definition. The definitions
// themselves are shared, not copied.
func (m *Memory) Snapshot() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]any, len(m.defs))
	for id, def := range m.defs {
		out[id] = def
	}

	return out
}
