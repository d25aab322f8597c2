package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

const (
	sansFamily = "Helvetica, Arial, sans-serif"
	monoFamily = "Menlo, Consolas, monospace"
)

// EncodeSVG writes the drawing as an SVG document.
func EncodeSVG(d *Drawing, w io.Writer) error {
	canvas := svg.New(w)
	canvas.Start(round(d.Width), round(d.Height))

	if d.Background != "" {
		canvas.Rect(0, 0, round(d.Width), round(d.Height), fmt.Sprintf("fill:%s", d.Background))
	}

	for _, s := range d.Shapes {
		switch v := s.(type) {
		case Rect:
			canvas.Rect(round(v.X), round(v.Y), round(v.W), round(v.H), rectStyle(v))
		case Line:
			canvas.Line(round(v.X1), round(v.Y1), round(v.X2), round(v.Y2), lineStyle(v))
		case Polygon:
			xs := make([]int, len(v.X))
			ys := make([]int, len(v.Y))
			for i := range v.X {
				xs[i] = round(v.X[i])
				ys[i] = round(v.Y[i])
			}
			canvas.Polygon(xs, ys, polygonStyle(v))
		case Text:
			canvas.Text(round(v.X), round(v.Y), v.Content, textStyle(v))
		}
	}

	canvas.End()
	return nil
}

func rectStyle(r Rect) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fill:%s", orNone(r.Fill))
	if op := opacity(r.Opacity); op != 1 {
		fmt.Fprintf(&b, ";fill-opacity:%.2f", op)
	}
	if r.Stroke != "" && r.StrokeWidth > 0 {
		fmt.Fprintf(&b, ";stroke:%s;stroke-width:%.1f", r.Stroke, r.StrokeWidth)
	}
	return b.String()
}

func lineStyle(l Line) string {
	var b strings.Builder
	fmt.Fprintf(&b, "stroke:%s;stroke-width:%.1f", orNone(l.Color), strokeWidth(l.Width))
	if l.Dashed {
		b.WriteString(";stroke-dasharray:4,3")
	}
	return b.String()
}

func polygonStyle(p Polygon) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fill:%s", orNone(p.Fill))
	if p.Stroke != "" && p.StrokeWidth > 0 {
		fmt.Fprintf(&b, ";stroke:%s;stroke-width:%.1f", p.Stroke, p.StrokeWidth)
	}
	return b.String()
}

func textStyle(t Text) string {
	var b strings.Builder
	family := sansFamily
	if t.Mono {
		family = monoFamily
	}
	fmt.Fprintf(&b, "font-family:%s;font-size:%.1fpx;fill:%s", family, t.Size, orNone(t.Color))
	switch t.Anchor {
	case AnchorMiddle:
		b.WriteString(";text-anchor:middle")
	case AnchorEnd:
		b.WriteString(";text-anchor:end")
	}
	if t.Bold {
		b.WriteString(";font-weight:bold")
	}
	return b.String()
}

func orNone(color string) string {
	if color == "" {
		return "none"
	}
	return color
}

func strokeWidth(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
