package primitive

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOf(t *testing.T) {
	tests := []struct {
		in       any
		expected Value
	}{
		{5, Int(5)},
		{int8(-2), Int(-2)},
		{uint16(7), Int(7)},
		{uint64(math.MaxUint64), Float(math.MaxUint64)},
		{50.0, Float(50)},
		{float32(0.5), Float(0.5)},
		{true, Bool(true)},
		{"bar", String("bar")},
	}

	for _, tt := range tests {
		v, ok := Of(tt.in)
		require.True(t, ok, "%T", tt.in)
		assert.Equal(t, tt.expected, v)
	}

	_, ok := Of(nil)
	assert.False(t, ok)

	_, ok = Of([]int{1})
	assert.False(t, ok)

	assert.Panics(t, func() { MustOf(struct{}{}) })
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "5", Int(5).String())
	assert.Equal(t, "0.25", Float(0.25).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, `"bar"`, String("bar").String())
	assert.Equal(t, "<unset>", Value{}.String())
	assert.Nil(t, Value{}.Interface())
	assert.False(t, Value{}.IsSet())
	assert.True(t, Float(1).IsNumber())
	assert.False(t, Bool(false).IsNumber())
}

func TestValueYAML(t *testing.T) {
	var doc struct {
		A Value `yaml:"a"`
		B Value `yaml:"b"`
		C Value `yaml:"c"`
		D Value `yaml:"d"`
		E Value `yaml:"e"`
		F Value `yaml:"f"`
		G Value `yaml:"g"`
	}

	err := yaml.Unmarshal([]byte(`
a: 5
b: 50.0
c: true
d: bar
e: null
f: "10"
`), &doc)
	require.NoError(t, err)

	assert.Equal(t, Int(5), doc.A)
	assert.Equal(t, Float(50), doc.B)
	assert.Equal(t, Bool(true), doc.C)
	assert.Equal(t, String("bar"), doc.D)
	assert.False(t, doc.E.IsSet())
	assert.Equal(t, String("10"), doc.F)
	assert.False(t, doc.G.IsSet())

	err = yaml.Unmarshal([]byte("a: [1, 2]"), &doc)
	require.Error(t, err)

	out, err := yaml.Marshal(map[string]Value{"x": Int(3), "s": String("z")})
	require.NoError(t, err)
	assert.Equal(t, "s: z\nx: 3\n", string(out))
}

func TestValueJSON(t *testing.T) {
	var doc struct {
		A Value `json:"a"`
		B Value `json:"b"`
		C Value `json:"c"`
		D Value `json:"d"`
		E Value `json:"e"`
		F Value `json:"f"`
	}

	err := json.Unmarshal([]byte(`{"a": 5, "b": 50.0, "c": false, "d": "bar", "e": null, "f": 1e3}`), &doc)
	require.NoError(t, err)

	assert.Equal(t, Int(5), doc.A)
	assert.Equal(t, Float(50), doc.B)
	assert.Equal(t, Bool(false), doc.C)
	assert.Equal(t, String("bar"), doc.D)
	assert.False(t, doc.E.IsSet())
	assert.Equal(t, Float(1000), doc.F)

	err = json.Unmarshal([]byte(`{"a": {"x": 1}}`), &doc)
	require.Error(t, err)

	out, err := json.Marshal([]Value{Int(3), Bool(true), {}})
	require.NoError(t, err)
	assert.JSONEq(t, `[3, true, null]`, string(out))
}
