package fieldpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"def-modifier/internal/diagnostic"
)

func TestParse(t *testing.T) {
	tests := []struct {
		path     string
		expected []Segment
	}{
		{"intValue", []Segment{Member("intValue")}},
		{"nested.intValue", []Segment{Member("nested"), Member("intValue")}},
		{"nested.anotherNest.intValue", []Segment{Member("nested"), Member("anotherNest"), Member("intValue")}},
		{"arr[0].value", []Segment{Member("arr"), Index(0), Member("value")}},
		{"arr[0].nestedValues[1]", []Segment{Member("arr"), Index(0), Member("nestedValues"), Index(1)}},
		{"values[2]", []Segment{Member("values"), Index(2)}},
		{"grid[1][2]", []Segment{Member("grid"), Index(1), Index(2)}},
		{"_private9.x_1", []Segment{Member("_private9"), Member("x_1")}},
		{"arr[007]", []Segment{Member("arr"), Index(7)}},
		{"arr[-0]", []Segment{Member("arr"), Index(0)}},
		{"arr[-000].value", []Segment{Member("arr"), Index(0), Member("value")}},
		{"arr[99999999999999999999999]", []Segment{Member("arr"), Index(math.MaxInt)}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := Parse(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Segments)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		reason string
	}{
		{"empty", "", "empty path"},
		{"empty segment", "a..b", "empty segment"},
		{"leading dot", ".a", "empty segment"},
		{"trailing dot", "a.", "trailing '.'"},
		{"bad bracket", "arr[.value", "unmatched '['"},
		{"unclosed at end", "arr[1", "unmatched '['"},
		{"stray close", "arr]", "unmatched ']'"},
		{"empty index", "arr[]", "empty index"},
		{"negative index", "arr[-1].value", "negative index -1"},
		{"non int index", "arr[1.0].value", "is not an integer"},
		{"non number index", "arr[foo].value", "is not an integer"},
		{"lone minus", "arr[-]", "is not an integer"},
		{"index without member", "[0]", "index without member name"},
		{"junk after index", "arr[0]x", "after index"},
		{"bad identifier", "9lives", "invalid identifier"},
		{"dash identifier", "a-b", "invalid identifier"},
		{"negative zero padded", "arr[-010]", "negative index -010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.path)
			require.Error(t, err)
			require.ErrorIs(t, err, diagnostic.ErrMalformedPath)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestPathString(t *testing.T) {
	for _, text := range []string{
		"intValue",
		"nested.intValue",
		"arr[0].nestedValues[1]",
		"grid[1][2].cell",
	} {
		assert.Equal(t, text, MustParse(text).String())
	}

	p := MustParse("arr[0].nestedValues[1]")
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, Index(1), p.Last())
	assert.Equal(t, "arr[0]", p.Prefix(2))
	assert.Equal(t, p.String(), p.Prefix(10))
	assert.True(t, p.Equals(MustParse("arr[0].nestedValues[1]")))
	assert.False(t, p.Equals(MustParse("arr[0].nestedValues[2]")))
	assert.True(t, Path{}.IsEmpty())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("arr[") })
}

func TestSegmentKindString(t *testing.T) {
	assert.Equal(t, "SegmentMember", SegmentMember.String())
	assert.Equal(t, "SegmentIndex", SegmentIndex.String())
	assert.Equal(t, "SegmentKind(0)", SegmentKind(0).String())
}
