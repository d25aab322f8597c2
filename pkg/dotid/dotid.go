// Package dotid parses dotted hierarchical identifiers such as "1.2.3".
package dotid

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Separator is the delimiter between ID segments.
	Separator = "."

	// nonNumericKey sorts non-numeric segments after all numeric ones.
	nonNumericKey = 1 << 20
)

// ID is a parsed dotted identifier.
type ID struct {
	Raw      string
	Segments []string
	key      []int
}

// Parse splits a dotted identifier into its segments.
// It returns an error for an empty identifier or an empty segment ("1..2").
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, fmt.Errorf("empty ID")
	}

	segments := strings.Split(s, Separator)
	key := make([]int, len(segments))
	for i, seg := range segments {
		if seg == "" {
			return ID{}, fmt.Errorf("ID %q has an empty segment", s)
		}
		n, err := strconv.Atoi(seg)
		if err != nil {
			n = nonNumericKey
		}
		key[i] = n
	}

	return ID{Raw: s, Segments: segments, key: key}, nil
}

// Depth returns the number of segments.
func (id ID) Depth() int {
	return len(id.Segments)
}

// Parent returns the identifier with the last segment removed.
// The second return value is false for root identifiers.
func (id ID) Parent() (string, bool) {
	if len(id.Segments) <= 1 {
		return "", false
	}
	return strings.Join(id.Segments[:len(id.Segments)-1], Separator), true
}

// Less orders identifiers by their numeric segment sequence.
// Non-numeric segments sort after numeric ones; shorter sequences that are a
// prefix of longer ones sort first.
func Less(a, b ID) bool {
	for i := 0; i < len(a.key) && i < len(b.key); i++ {
		if a.key[i] != b.key[i] {
			return a.key[i] < b.key[i]
		}
		if a.key[i] == nonNumericKey && a.Segments[i] != b.Segments[i] {
			return a.Segments[i] < b.Segments[i]
		}
	}
	return len(a.key) < len(b.key)
}
