package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"def-modifier/internal/diagnostic"
)

func TestMemory(t *testing.T) {
	m := NewMemory()

	unit := &struct{ HP int }{HP: 10}
	require.NoError(t, m.Add("b", unit))
	require.NoError(t, m.Add("a", map[string]any{"hp": 3}))

	assert.Error(t, m.Add("a", nil))
	assert.Error(t, m.Add("", unit))

	def, err := m.GetDef("b")
	require.NoError(t, err)
	assert.Same(t, unit, def)

	_, err = m.GetDef("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrNotFound)

	assert.Equal(t, []string{"a", "b"}, m.IDs())

	snap := m.Snapshot()
	assert.Len(t, snap, 2)

	delete(snap, "a")
	assert.Equal(t, []string{"a", "b"}, m.IDs())
}
