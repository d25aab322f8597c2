// Package render holds the drawing primitives produced by the chart layouts
// and encodes them to SVG, PNG, and PDF.
//
// Layouts emit a Drawing and never talk to an encoder; the same Drawing feeds
// every output format.
package render

// Anchor positions text horizontally relative to its X coordinate.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Drawing is a complete chart: a canvas size, a background color, and an
// ordered list of shapes. Shapes are painted in order.
type Drawing struct {
	Width      float64
	Height     float64
	Background string
	Shapes     []Shape
}

// Add appends shapes to the drawing.
func (d *Drawing) Add(shapes ...Shape) {
	d.Shapes = append(d.Shapes, shapes...)
}

// Shape is a paintable primitive.
type Shape interface {
	shape()
}

// Rect is an axis-aligned rectangle. An Opacity of zero paints opaque.
type Rect struct {
	X, Y, W, H  float64
	Fill        string
	Opacity     float64
	Stroke      string
	StrokeWidth float64
}

// Line is a straight stroke between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          string
	Width          float64
	Dashed         bool
}

// Polygon is a closed filled shape.
type Polygon struct {
	X, Y        []float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Text is a string drawn with its baseline at Y.
type Text struct {
	X, Y    float64
	Content string
	Size    float64
	Color   string
	Anchor  Anchor
	Bold    bool
	Mono    bool
}

func (Rect) shape()    {}
func (Line) shape()    {}
func (Polygon) shape() {}
func (Text) shape()    {}

func opacity(o float64) float64 {
	if o <= 0 || o > 1 {
		return 1
	}
	return o
}
