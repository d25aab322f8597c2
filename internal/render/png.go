package render

import (
	"io"

	"github.com/fogleman/gg"
)

// EncodePNG rasterizes the drawing and writes it as a PNG image.
//
// Text is drawn with the library's built-in face, so PNG output ignores the
// per-shape font size; SVG and PDF honor it.
func EncodePNG(d *Drawing, w io.Writer) error {
	dc := gg.NewContext(round(d.Width), round(d.Height))

	bg := d.Background
	if bg == "" {
		bg = "#ffffff"
	}
	dc.SetHexColor(bg)
	dc.Clear()

	for _, s := range d.Shapes {
		switch v := s.(type) {
		case Rect:
			if v.Fill != "" {
				setColorAlpha(dc, v.Fill, opacity(v.Opacity))
				dc.DrawRectangle(v.X, v.Y, v.W, v.H)
				dc.Fill()
			}
			if v.Stroke != "" && v.StrokeWidth > 0 {
				dc.SetHexColor(v.Stroke)
				dc.SetLineWidth(v.StrokeWidth)
				dc.DrawRectangle(v.X, v.Y, v.W, v.H)
				dc.Stroke()
			}
		case Line:
			dc.SetHexColor(orBlack(v.Color))
			dc.SetLineWidth(strokeWidth(v.Width))
			if v.Dashed {
				dc.SetDash(4, 3)
			}
			dc.DrawLine(v.X1, v.Y1, v.X2, v.Y2)
			dc.Stroke()
			if v.Dashed {
				dc.SetDash()
			}
		case Polygon:
			if len(v.X) == 0 {
				continue
			}
			dc.MoveTo(v.X[0], v.Y[0])
			for i := 1; i < len(v.X); i++ {
				dc.LineTo(v.X[i], v.Y[i])
			}
			dc.ClosePath()
			if v.Fill != "" {
				dc.SetHexColor(v.Fill)
				if v.Stroke != "" && v.StrokeWidth > 0 {
					dc.FillPreserve()
				} else {
					dc.Fill()
				}
			}
			if v.Stroke != "" && v.StrokeWidth > 0 {
				dc.SetHexColor(v.Stroke)
				dc.SetLineWidth(v.StrokeWidth)
				dc.Stroke()
			}
		case Text:
			dc.SetHexColor(orBlack(v.Color))
			ax := 0.0
			switch v.Anchor {
			case AnchorMiddle:
				ax = 0.5
			case AnchorEnd:
				ax = 1.0
			}
			dc.DrawStringAnchored(v.Content, v.X, v.Y, ax, 0)
		}
	}

	return dc.EncodePNG(w)
}

func setColorAlpha(dc *gg.Context, hex string, alpha float64) {
	r, g, b := ParseHex(hex)
	dc.SetRGBA(float64(r)/255, float64(g)/255, float64(b)/255, alpha)
}

func orBlack(color string) string {
	if color == "" {
		return "#000000"
	}
	return color
}
