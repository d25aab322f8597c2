package dotid

import (
	"sort"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		segments int
	}{
		{"single segment", "1", false, 1},
		{"two segments", "1.2", false, 2},
		{"three segments", "1.1.1", false, 3},
		{"trims whitespace", " 2.3 ", false, 2},
		{"non-numeric segment allowed", "1.a", false, 2},
		{"empty is invalid", "", true, 0},
		{"blank is invalid", "   ", true, 0},
		{"empty segment is invalid", "1..2", true, 0},
		{"trailing dot is invalid", "1.", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && len(id.Segments) != tt.segments {
				t.Errorf("Parse(%q) segments = %d, want %d", tt.input, len(id.Segments), tt.segments)
			}
		})
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{"1.1", 2},
		{"1.1.1", 3},
		{"10.2.3.4", 4},
	}

	for _, tt := range tests {
		id, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
		}
		if got := id.Depth(); got != tt.want {
			t.Errorf("Depth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParent(t *testing.T) {
	tests := []struct {
		input  string
		parent string
		ok     bool
	}{
		{"1", "", false},
		{"1.1", "1", true},
		{"1.1.1", "1.1", true},
		{"3.12.4", "3.12", true},
	}

	for _, tt := range tests {
		id, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
		}
		parent, ok := id.Parent()
		if parent != tt.parent || ok != tt.ok {
			t.Errorf("Parent(%q) = (%q, %v), want (%q, %v)", tt.input, parent, ok, tt.parent, tt.ok)
		}
	}
}

func TestLess_NumericOrdering(t *testing.T) {
	raw := []string{"10", "2", "1.10", "1.2", "1", "x", "1.x"}
	ids := make([]ID, len(raw))
	for i, s := range raw {
		id, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", s, err)
		}
		ids[i] = id
	}

	sort.Slice(ids, func(i, j int) bool { return Less(ids[i], ids[j]) })

	want := []string{"1", "1.2", "1.10", "1.x", "2", "10", "x"}
	for i, w := range want {
		if ids[i].Raw != w {
			t.Fatalf("sorted[%d] = %q, want %q", i, ids[i].Raw, w)
		}
	}
}
