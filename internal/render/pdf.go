package render

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// EncodePDF writes the drawing as a single-page PDF in point units.
func EncodePDF(d *Drawing, w io.Writer) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: d.Width, Ht: d.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	bg := d.Background
	if bg == "" {
		bg = "#ffffff"
	}
	setFill(pdf, bg)
	pdf.Rect(0, 0, d.Width, d.Height, "F")

	for _, s := range d.Shapes {
		switch v := s.(type) {
		case Rect:
			style := ""
			if v.Fill != "" {
				setFill(pdf, v.Fill)
				style += "F"
			}
			if v.Stroke != "" && v.StrokeWidth > 0 {
				setDraw(pdf, v.Stroke)
				pdf.SetLineWidth(v.StrokeWidth)
				style += "D"
			}
			if style == "" {
				continue
			}
			if op := opacity(v.Opacity); op != 1 {
				pdf.SetAlpha(op, "Normal")
				pdf.Rect(v.X, v.Y, v.W, v.H, style)
				pdf.SetAlpha(1, "Normal")
			} else {
				pdf.Rect(v.X, v.Y, v.W, v.H, style)
			}
		case Line:
			setDraw(pdf, orBlack(v.Color))
			pdf.SetLineWidth(strokeWidth(v.Width))
			if v.Dashed {
				pdf.SetDashPattern([]float64{4, 3}, 0)
			}
			pdf.Line(v.X1, v.Y1, v.X2, v.Y2)
			if v.Dashed {
				pdf.SetDashPattern([]float64{}, 0)
			}
		case Polygon:
			points := make([]gofpdf.PointType, len(v.X))
			for i := range v.X {
				points[i] = gofpdf.PointType{X: v.X[i], Y: v.Y[i]}
			}
			style := "F"
			if v.Fill == "" {
				style = "D"
			} else if v.Stroke != "" && v.StrokeWidth > 0 {
				style = "FD"
			}
			if v.Fill != "" {
				setFill(pdf, v.Fill)
			}
			if v.Stroke != "" && v.StrokeWidth > 0 {
				setDraw(pdf, v.Stroke)
				pdf.SetLineWidth(v.StrokeWidth)
			}
			pdf.Polygon(points, style)
		case Text:
			styleStr := ""
			if v.Bold {
				styleStr = "B"
			}
			family := "Helvetica"
			if v.Mono {
				family = "Courier"
			}
			pdf.SetFont(family, styleStr, v.Size)
			r, g, b := ParseHex(orBlack(v.Color))
			pdf.SetTextColor(int(r), int(g), int(b))

			x := v.X
			switch v.Anchor {
			case AnchorMiddle:
				x -= pdf.GetStringWidth(v.Content) / 2
			case AnchorEnd:
				x -= pdf.GetStringWidth(v.Content)
			}
			pdf.Text(x, v.Y, v.Content)
		}
	}

	return pdf.Output(w)
}

func setFill(pdf *gofpdf.Fpdf, hex string) {
	r, g, b := ParseHex(hex)
	pdf.SetFillColor(int(r), int(g), int(b))
}

func setDraw(pdf *gofpdf.Fpdf, hex string) {
	r, g, b := ParseHex(hex)
	pdf.SetDrawColor(int(r), int(g), int(b))
}
