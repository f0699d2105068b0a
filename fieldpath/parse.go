package fieldpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"def-modifier/internal/diagnostic"
)

// Parse parses a field path string into a Path.
// Supports: "Field", "Nested.Field", "Items[2]", "Items[0].Values[1]".
// Every failure wraps diagnostic.ErrMalformedPath.
func Parse(text string) (Path, error) {
	if text == "" {
		return Path{}, malformed(text, "empty path")
	}

	var segments []Segment

	for i := 0; i < len(text); {
		start := i
		for i < len(text) && text[i] != '.' && text[i] != '[' && text[i] != ']' {
			i++
		}

		name := text[start:i]
		if name == "" {
			if i < len(text) && text[i] == '[' {
				return Path{}, malformed(text, "index without member name")
			}

			return Path{}, malformed(text, "empty segment")
		}

		if !isValidIdent(name) {
			return Path{}, malformed(text, fmt.Sprintf("invalid identifier %q", name))
		}

		segments = append(segments, Member(name))

		for i < len(text) && text[i] == '[' {
			end := strings.IndexByte(text[i+1:], ']')
			if end < 0 {
				return Path{}, malformed(text, "unmatched '['")
			}

			idx, err := parseIndex(text[i+1 : i+1+end])
			if err != nil {
				return Path{}, malformed(text, err.Error())
			}

			segments = append(segments, Index(idx))
			i += end + 2
		}

		if i == len(text) {
			break
		}

		switch text[i] {
		case '.':
			i++
			if i == len(text) {
				return Path{}, malformed(text, "trailing '.'")
			}
		case ']':
			return Path{}, malformed(text, "unmatched ']'")
		default:
			return Path{}, malformed(text, fmt.Sprintf("unexpected %q after index", text[i]))
		}
	}

	return Path{Segments: segments}, nil
}

// MustParse is like Parse but panics on a malformed path.
func MustParse(text string) Path {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return p
}

// parseIndex validates the content between brackets: an integer literal that is not negative.
// "-0" denotes zero. A literal too large for int is clamped to math.MaxInt so that it
// fails the bounds check of the sequence it indexes instead of the parse.
func parseIndex(lit string) (int, error) {
	if lit == "" {
		return 0, errors.New("empty index")
	}

	digits := strings.TrimPrefix(lit, "-")
	if digits == "" || !isDigits(digits) {
		return 0, fmt.Errorf("index %q is not an integer", lit)
	}

	if len(digits) != len(lit) && strings.Trim(digits, "0") != "" {
		return 0, fmt.Errorf("negative index %s", lit)
	}

	idx, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, nil
	}

	if err != nil {
		return 0, fmt.Errorf("index %q is not an integer", lit)
	}

	return idx, nil
}

func malformed(text, reason string) error {
	return fmt.Errorf("%w %q: %s", diagnostic.ErrMalformedPath, text, reason)
}

// isValidIdent checks if a string is a valid identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			// Subsequent characters can be letter, digit, or underscore
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
