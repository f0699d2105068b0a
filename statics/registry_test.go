package statics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"def-modifier/internal/diagnostic"
)

func TestDefineAndLookup(t *testing.T) {
	r := NewRegistry()

	var maxSquad int

	outer := r.Define("def-modifier/game.Tuning")
	outer.Var("MaxSquadSize", &maxSquad)
	inner := r.Define("def-modifier/game.Tuning+AI+Aggro")

	assert.Equal(t, "def-modifier/game.Tuning+AI+Aggro", inner.Name())
	assert.Same(t, outer, r.Define("def-modifier/game.Tuning"))

	tests := []struct {
		name     string
		expected *Namespace
	}{
		{"def-modifier/game.Tuning", outer},
		{"game.Tuning", outer},
		{"Tuning", outer},
		{"game.Tuning+AI+Aggro", inner},
		{"def-modifier/game.Tuning+AI+Aggro", inner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, err := r.Lookup(tt.name)
			require.NoError(t, err)
			assert.Same(t, tt.expected, ns)
		})
	}

	assert.Equal(t, []string{"def-modifier/game.Tuning"}, r.Names())
}

func TestLookupNotFound(t *testing.T) {
	r := NewRegistry()
	r.Define("a/one.Config")
	r.Define("b/one.Config")
	r.Define("tests.TestClass+Nested")

	for _, name := range []string{
		"",
		"Missing",
		"one.Config",
		"Config",
		"tests.TestClass+Other",
		"tests.TestClass+Nested+Deeper",
		"game.TestClass",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := r.Lookup(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, diagnostic.ErrNotFound)
		})
	}

	r.Remove("b/one.Config")
	_, err := r.Lookup("one.Config")
	require.NoError(t, err)
}

func TestNamespaceMember(t *testing.T) {
	var tuning struct {
		MaxSquadSize int
		Difficulty   float64 `def:"difficultyScale"`
		Hidden       bool    `def:"-"`
		internal     int
	}

	r := NewRegistry()
	ns := r.Define("game.Tuning").Bind(&tuning)
	ns.Nested("AI")

	cell, nested, ok := ns.Member("MaxSquadSize")
	require.True(t, ok)
	assert.Nil(t, nested)
	cell.SetInt(12)
	assert.Equal(t, 12, tuning.MaxSquadSize)

	cell, _, ok = ns.Member("maxSquadSize")
	require.True(t, ok)
	assert.True(t, cell.CanSet())

	cell, _, ok = ns.Member("difficultyScale")
	require.True(t, ok)
	cell.SetFloat(1.5)
	assert.InDelta(t, 1.5, tuning.Difficulty, 1e-9)

	_, nested, ok = ns.Member("ai")
	require.True(t, ok)
	assert.Equal(t, "game.Tuning+AI", nested.Name())

	for _, name := range []string{"Difficulty", "Hidden", "internal", "nope"} {
		_, _, ok = ns.Member(name)
		assert.False(t, ok, name)
	}

	assert.Equal(t, []string{"AI", "MaxSquadSize", "difficultyScale"}, ns.Members())
	_ = tuning.internal
}

func TestNamespaceCaseInsensitiveAmbiguity(t *testing.T) {
	var a, b int

	ns := NewRegistry().Define("x.Y").Var("Speed", &a).Var("SPEED", &b)

	_, _, ok := ns.Member("speed")
	assert.False(t, ok)

	cell, _, ok := ns.Member("SPEED")
	require.True(t, ok)
	cell.SetInt(3)
	assert.Equal(t, 3, b)
}

func TestBindingPanics(t *testing.T) {
	ns := NewRegistry().Define("x.Y")

	var n int

	var nilPtr *int

	assert.Panics(t, func() { ns.Var("n", n) })
	assert.Panics(t, func() { ns.Var("n", nilPtr) })
	assert.Panics(t, func() { ns.Bind(&n) })
	assert.Panics(t, func() { NewRegistry().Define("") })
}

func TestDefaultRegistry(t *testing.T) {
	var level int

	Define("def-modifier/statics.defaultTest").Var("Level", &level)
	t.Cleanup(func() { Default.Remove("def-modifier/statics.defaultTest") })

	ns, err := Lookup("statics.defaultTest")
	require.NoError(t, err)

	cell, _, ok := ns.Member("level")
	require.True(t, ok)
	cell.SetInt(4)
	assert.Equal(t, 4, level)
}
