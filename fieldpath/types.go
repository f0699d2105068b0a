package fieldpath

import (
	"strconv"
	"strings"

	"def-modifier/internal/common"
)

//go:generate go tool stringer -type=SegmentKind -output=segment_kind_string.go

// SegmentKind tells whether a segment names a member or indexes a sequence.
type SegmentKind int

const (
	_ SegmentKind = iota // zero value is reserved as invalid

	SegmentMember
	SegmentIndex
)

// Segment is a single access step of a Path.
type Segment struct {
	Kind SegmentKind
	// Name is the member name, set for SegmentMember.
	Name string
	// Index is the element index, set for SegmentIndex. Never negative.
	Index int
}

// Member returns a member access segment.
func Member(name string) Segment {
	return Segment{Kind: SegmentMember, Name: name}
}

// Index returns a sequence index segment.
func Index(i int) Segment {
	return Segment{Kind: SegmentIndex, Index: i}
}

// IsMember reports whether the segment names a member.
func (s Segment) IsMember() bool { return s.Kind == SegmentMember }

// IsIndex reports whether the segment indexes a sequence.
func (s Segment) IsIndex() bool { return s.Kind == SegmentIndex }

// String renders the segment the way it is written in a path.
func (s Segment) String() string {
	if s.Kind == SegmentIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}

	return s.Name
}

// Path represents a parsed field path like "arr[0].nestedValues[1]".
type Path struct {
	Segments []Segment
}

// String returns the path in its canonical text form.
func (p Path) String() string {
	var sb strings.Builder

	for i, seg := range p.Segments {
		if i > 0 && seg.IsMember() {
			sb.WriteString(".")
		}

		sb.WriteString(seg.String())
	}

	return sb.String()
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.Segments)
}

// IsEmpty returns true if the path has no segments.
func (p Path) IsEmpty() bool {
	return common.IsEmpty(p.Segments)
}

// Last returns the final segment. It panics on an empty path.
func (p Path) Last() Segment {
	return p.Segments[len(p.Segments)-1]
}

// Prefix returns the text of the first n segments, used to point at the
// segment where resolution failed.
func (p Path) Prefix(n int) string {
	n = max(0, min(n, len(p.Segments)))

	return Path{Segments: p.Segments[:n]}.String()
}

// Equals returns true if two paths are equal.
func (p Path) Equals(other Path) bool {
	if len(p.Segments) != len(other.Segments) {
		return false
	}

	for i, seg := range p.Segments {
		if seg != other.Segments[i] {
			return false
		}
	}

	return true
}
