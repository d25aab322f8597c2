package render

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func sampleDrawing() *Drawing {
	d := &Drawing{Width: 200, Height: 100, Background: "#ffffff"}
	d.Add(
		Rect{X: 10, Y: 20, W: 50, H: 10, Fill: "#4ea72e", Stroke: "#000000", StrokeWidth: 1},
		Line{X1: 0, Y1: 50, X2: 200, Y2: 50, Color: "#333333", Width: 2, Dashed: true},
		Polygon{X: []float64{100, 110, 105}, Y: []float64{10, 10, 20}, Fill: "#000000"},
		Text{X: 100, Y: 90, Content: "hello", Size: 12, Color: "#333333", Anchor: AnchorMiddle},
	)
	return d
}

func TestEncodeSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeSVG(sampleDrawing(), &buf); err != nil {
		t.Fatalf("EncodeSVG() unexpected error: %v", err)
	}
	out := buf.String()

	checks := []string{
		"<svg", "</svg>",
		`width="200"`, `height="100"`,
		"fill:#4ea72e",
		"stroke-dasharray:4,3",
		">hello</text>",
		"text-anchor:middle",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(sampleDrawing(), &buf); err != nil {
		t.Fatalf("EncodePNG() unexpected error: %v", err)
	}
	// PNG magic number.
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output does not start with the PNG signature")
	}
}

func TestEncodePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePDF(sampleDrawing(), &buf); err != nil {
		t.Fatalf("EncodePDF() unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with the PDF signature")
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(sampleDrawing(), "gif", &buf); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "chart")

	paths, err := WriteFiles(sampleDrawing(), prefix, []string{"svg", "png", "pdf"})
	if err != nil {
		t.Fatalf("WriteFiles() unexpected error: %v", err)
	}
	want := []string{prefix + ".svg", prefix + ".png", prefix + ".pdf"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("missing output %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("output %s is empty", p)
		}
	}
}

func TestValidFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"svg", true}, {"PNG", true}, {"pdf", true},
		{"gif", false}, {"", false},
	}
	for _, tt := range tests {
		if got := ValidFormat(tt.format); got != tt.want {
			t.Errorf("ValidFormat(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		input   string
		r, g, b uint8
	}{
		{"#000000", 0, 0, 0},
		{"#ffffff", 255, 255, 255},
		{"#4ea72e", 0x4e, 0xa7, 0x2e},
		{"d0e1cd", 0xd0, 0xe1, 0xcd},
		{"garbage", 0, 0, 0},
		{"#fff", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := ParseHex(tt.input)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("ParseHex(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.input, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestLerpHex(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want string
	}{
		{"at zero", 0, "#000000"},
		{"at one", 1, "#ffffff"},
		{"clamped below", -1, "#000000"},
		{"clamped above", 2, "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LerpHex("#000000", "#ffffff", tt.t); got != tt.want {
				t.Errorf("LerpHex(t=%v) = %q, want %q", tt.t, got, tt.want)
			}
		})
	}

	mid := LerpHex("#000000", "#ffffff", 0.5)
	r, g, b := ParseHex(mid)
	if r < 126 || r > 129 || g != r || b != r {
		t.Errorf("midpoint = %q, want neutral gray near #808080", mid)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		maxLines int
		want     []string
	}{
		{"empty", "", 10, 3, nil},
		{"fits", "short", 10, 3, []string{"short"}},
		{"two lines", "alpha beta", 5, 3, []string{"alpha", "beta"}},
		{"long word split", "abcdefghij", 4, 9, []string{"abcd", "efgh", "ij"}},
		{"ellipsized", "one two three four five six", 9, 2, []string{"one two", "th..."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.input, tt.width, tt.maxLines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d, %d) = %v, want %v", tt.input, tt.width, tt.maxLines, got, tt.want)
			}
		})
	}
}

func TestEstimateTextWidth(t *testing.T) {
	if got := EstimateTextWidth("abcd", 10); got != 24 {
		t.Errorf("EstimateTextWidth = %v, want 24", got)
	}
	if got := EstimateTextWidth("", 10); got != 0 {
		t.Errorf("EstimateTextWidth(empty) = %v, want 0", got)
	}
}
