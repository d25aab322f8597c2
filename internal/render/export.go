package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/planviz/planviz/internal/domain"
)

// Formats lists the supported output formats.
var Formats = []string{"svg", "png", "pdf"}

// ValidFormat reports whether format names a supported encoder.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == strings.ToLower(format) {
			return true
		}
	}
	return false
}

// Encode writes the drawing to w in the given format (svg, png, or pdf).
func Encode(d *Drawing, format string, w io.Writer) error {
	switch strings.ToLower(format) {
	case "svg":
		return EncodeSVG(d, w)
	case "png":
		return EncodePNG(d, w)
	case "pdf":
		return EncodePDF(d, w)
	}
	return fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(Formats, ", "))
}

// WriteFiles writes the drawing once per format as <prefix>.<format> and
// returns the paths written.
func WriteFiles(d *Drawing, prefix string, formats []string) ([]string, error) {
	var paths []string
	for _, format := range formats {
		format = strings.ToLower(strings.TrimSpace(format))
		if !ValidFormat(format) {
			return paths, fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(Formats, ", "))
		}

		path := prefix + "." + format
		f, err := os.Create(path)
		if err != nil {
			return paths, domain.NewRenderError(format, err)
		}
		if err := Encode(d, format, f); err != nil {
			f.Close()
			return paths, domain.NewRenderError(format, err)
		}
		if err := f.Close(); err != nil {
			return paths, domain.NewRenderError(format, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
