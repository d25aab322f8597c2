package layout

import (
	"fmt"

	"github.com/planviz/planviz/internal/config"
	"github.com/planviz/planviz/internal/render"
	"github.com/planviz/planviz/internal/wbs"
)

const (
	wbsMargin   = 40.0
	wbsTitleGap = 50.0

	// Per-level box fills and edge colors, darkest at the top.
	wbsFill1, wbsEdge1 = "#4ea72e", "#2d6a34"
	wbsFill2, wbsEdge2 = "#d0e1cd", "#409140"
	wbsFill3, wbsEdge3 = "#e9f1e8", "#94bb9d"
)

// Box is the computed geometry for one node of the diagram.
type Box struct {
	Node  *wbs.Node
	X, Y  float64
	W, H  float64
	Level int
}

// WBSLayout is the computed work-breakdown-structure diagram.
type WBSLayout struct {
	Drawing *render.Drawing
	Boxes   []Box
}

// WBS lays out a work breakdown structure as columns: one column per
// top-level node, its children stacked beneath it, and grandchildren
// indented under each child along a vertical spine. Nodes deeper than
// three levels are not drawn.
func WBS(tree *wbs.Tree, title string, cfg config.WBSConfig) *WBSLayout {
	roots := tree.Roots
	colW := cfg.BoxWidth + cfg.Indent

	width := wbsMargin*2 + float64(len(roots))*colW
	if n := len(roots); n > 1 {
		width += float64(n-1) * cfg.ColumnGap
	}
	if width < cfg.BoxWidth+2*wbsMargin {
		width = cfg.BoxWidth + 2*wbsMargin
	}

	colH := 0.0
	for _, r := range roots {
		if h := columnHeight(r, cfg); h > colH {
			colH = h
		}
	}

	titleH := cfg.BoxHeight * 0.8
	top := wbsMargin + titleH + wbsTitleGap
	height := top + colH + wbsMargin

	d := &render.Drawing{Width: width, Height: height, Background: "#ffffff"}
	layout := &WBSLayout{Drawing: d}

	titleBox := Box{
		X: width/2 - cfg.BoxWidth*0.75, Y: wbsMargin,
		W: cfg.BoxWidth * 1.5, H: titleH,
	}
	addWBSBox(d, titleBox, title, wbsFill1, wbsEdge1, cfg)

	// Spine from the title box down to a horizontal rail over the columns.
	titleCX := titleBox.X + titleBox.W/2
	railY := wbsMargin + titleH + wbsTitleGap/2
	d.Add(render.Line{X1: titleCX, Y1: titleBox.Y + titleBox.H, X2: titleCX, Y2: railY, Color: cfg.LineColor, Width: 1.5})

	if len(roots) > 0 {
		firstCX := wbsMargin + cfg.BoxWidth/2
		lastCX := wbsMargin + float64(len(roots)-1)*(colW+cfg.ColumnGap) + cfg.BoxWidth/2
		d.Add(render.Line{X1: firstCX, Y1: railY, X2: lastCX, Y2: railY, Color: cfg.LineColor, Width: 1.5})
	}

	for i, root := range roots {
		colX := wbsMargin + float64(i)*(colW+cfg.ColumnGap)
		cx := colX + cfg.BoxWidth/2
		d.Add(render.Line{X1: cx, Y1: railY, X2: cx, Y2: top, Color: cfg.LineColor, Width: 1.5})
		layoutColumn(d, layout, root, colX, top, cfg)
	}

	return layout
}

// layoutColumn places one top-level node and its subtree at (x, y).
func layoutColumn(d *render.Drawing, layout *WBSLayout, root *wbs.Node, x, y float64, cfg config.WBSConfig) {
	rootBox := Box{Node: root, X: x, Y: y, W: cfg.BoxWidth, H: cfg.BoxHeight, Level: 1}
	layout.Boxes = append(layout.Boxes, rootBox)
	addWBSBox(d, rootBox, nodeLabel(root), wbsFill1, wbsEdge1, cfg)

	spineX := x + cfg.SpineOffset
	cur := y + cfg.BoxHeight + cfg.LevelGap

	for _, child := range root.Children {
		childBox := Box{Node: child, X: x, Y: cur, W: cfg.BoxWidth, H: cfg.BoxHeight, Level: 2}
		layout.Boxes = append(layout.Boxes, childBox)
		addWBSBox(d, childBox, nodeLabel(child), wbsFill2, wbsEdge2, cfg)

		// Spine from the column head down to this child.
		d.Add(render.Line{X1: spineX, Y1: y + cfg.BoxHeight, X2: spineX, Y2: cur + cfg.BoxHeight/2, Color: cfg.LineColor, Width: 1.2})
		cur += cfg.BoxHeight + cfg.IndentGap

		for _, grand := range child.Children {
			gx := x + cfg.Indent
			grandBox := Box{Node: grand, X: gx, Y: cur, W: cfg.BoxWidth, H: cfg.BoxHeight, Level: 3}
			layout.Boxes = append(layout.Boxes, grandBox)
			addWBSBox(d, grandBox, nodeLabel(grand), wbsFill3, wbsEdge3, cfg)

			gSpineX := x + cfg.Indent - cfg.SpineOffset
			d.Add(render.Line{X1: gSpineX, Y1: childBox.Y + cfg.BoxHeight, X2: gSpineX, Y2: cur + cfg.BoxHeight/2, Color: cfg.LineColor, Width: 1})
			d.Add(render.Line{X1: gSpineX, Y1: cur + cfg.BoxHeight/2, X2: gx, Y2: cur + cfg.BoxHeight/2, Color: cfg.LineColor, Width: 1})

			cur += cfg.BoxHeight + cfg.IndentGap
		}
		cur += cfg.LevelGap - cfg.IndentGap
	}
}

// columnHeight is the vertical space a top-level node's subtree occupies.
func columnHeight(root *wbs.Node, cfg config.WBSConfig) float64 {
	h := cfg.BoxHeight
	for _, child := range root.Children {
		h += cfg.LevelGap + cfg.BoxHeight
		for range child.Children {
			h += cfg.IndentGap + cfg.BoxHeight
		}
	}
	return h
}

func addWBSBox(d *render.Drawing, b Box, label, fill, edge string, cfg config.WBSConfig) {
	d.Add(render.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H, Fill: fill, Stroke: edge, StrokeWidth: 1.2})

	maxChars := int(b.W / (cfg.FontSize * 0.6))
	if maxChars < 8 {
		maxChars = 8
	}
	lines := render.Wrap(label, maxChars, 3)

	lineH := cfg.FontSize * 1.25
	startY := b.Y + b.H/2 - float64(len(lines)-1)*lineH/2 + cfg.FontSize/3
	for i, line := range lines {
		d.Add(render.Text{
			X: b.X + b.W/2, Y: startY + float64(i)*lineH,
			Content: line, Size: cfg.FontSize, Color: "#000000",
			Anchor: render.AnchorMiddle,
		})
	}
}

func nodeLabel(n *wbs.Node) string {
	if n.ID == "" {
		return n.Title
	}
	return fmt.Sprintf("%s - %s", n.ID, n.Title)
}
