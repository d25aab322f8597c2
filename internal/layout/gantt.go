package layout

import (
	"fmt"
	"sort"
	"time"

	"github.com/planviz/planviz/internal/config"
	"github.com/planviz/planviz/internal/domain"
	"github.com/planviz/planviz/internal/render"
)

const (
	ganttMarginTop    = 50
	ganttMarginRight  = 30
	ganttMarginBottom = 45

	// Axis padding around the first start and last finish.
	axisPadBefore = 3 * 24 * time.Hour
	axisPadAfter  = 7 * 24 * time.Hour
)

// Bar is the computed geometry for one task row.
type Bar struct {
	Task   domain.Task
	Row    int
	X0, X1 float64 // bar edges on the time axis
	Y      float64 // row center
}

// GanttLayout is the computed Gantt chart: the drawing plus the geometry the
// drawing was built from.
type GanttLayout struct {
	Drawing *render.Drawing
	Scale   TimeScale
	Bars    []Bar
}

// Gantt lays out a Gantt chart for the given tasks.
// Tasks are ordered by (Start, Finish, Title); each task occupies one row,
// with its bar spanning [Start, Finish] on a shared time axis. Dependency
// connectors run from a predecessor's finish to the successor's start.
func Gantt(tasks []domain.Task, title string, cfg config.GanttConfig) (*GanttLayout, error) {
	if len(tasks) == 0 {
		return nil, domain.NewEmptyTableError("gantt")
	}

	ordered := make([]domain.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.Finish.Equal(b.Finish) {
			return a.Finish.Before(b.Finish)
		}
		return a.Title < b.Title
	})

	axisMin, axisMax := timeBounds(ordered)
	axisMin = axisMin.Add(-axisPadBefore)
	axisMax = axisMax.Add(axisPadAfter)

	maxID, maxTitle := 0, 0
	for _, t := range ordered {
		if n := len([]rune(t.ID)); n > maxID {
			maxID = n
		}
		if n := len([]rune(t.Title)); n > maxTitle {
			maxTitle = n
		}
	}
	labelWidth := render.EstimateTextWidth(fmt.Sprintf("%*s   %*s", maxID, "", maxTitle, ""), cfg.FontSize)
	marginLeft := labelWidth + 25

	n := len(ordered)
	height := ganttMarginTop + float64(n)*cfg.RowHeight + ganttMarginBottom
	d := &render.Drawing{Width: cfg.Width, Height: height, Background: "#ffffff"}

	scale := NewTimeScale(axisMin, axisMax, marginLeft, cfg.Width-ganttMarginRight)
	plotTop := float64(ganttMarginTop)
	plotBottom := plotTop + float64(n)*cfg.RowHeight

	d.Add(render.Text{
		X: (marginLeft + cfg.Width - ganttMarginRight) / 2, Y: 30,
		Content: title, Size: cfg.FontSize + 4, Color: "#333333",
		Anchor: render.AnchorMiddle, Bold: true,
	})

	// Month gridlines and axis labels.
	for _, tick := range scale.MonthTicks() {
		x := scale.X(tick)
		d.Add(render.Line{X1: x, Y1: plotTop, X2: x, Y2: plotBottom, Color: "#bbbbbb", Width: 1, Dashed: true})
		d.Add(render.Text{
			X: x, Y: plotBottom + 18,
			Content: tick.Format("Jan 2006"), Size: cfg.FontSize - 1,
			Color: "#333333", Anchor: render.AnchorMiddle,
		})
	}

	colors := GroupColors(ordered)
	barHalf := cfg.RowHeight * cfg.BarHeight / 2

	layout := &GanttLayout{Drawing: d, Scale: scale}

	// Row backgrounds first, so bars and connectors paint over them.
	for i, t := range ordered {
		rowTop := plotTop + float64(i)*cfg.RowHeight
		bg := colors[t.Group]
		if t.Milestone {
			bg = cfg.MilestoneBG
		}
		d.Add(render.Rect{
			X: marginLeft, Y: rowTop,
			W: cfg.Width - ganttMarginRight - marginLeft, H: cfg.RowHeight,
			Fill: bg, Opacity: cfg.BackgroundAlpha,
		})
	}

	// Bars, milestone diamonds, and row labels.
	for i, t := range ordered {
		yc := plotTop + float64(i)*cfg.RowHeight + cfg.RowHeight/2
		x0, x1 := scale.X(t.Start), scale.X(t.Finish)
		layout.Bars = append(layout.Bars, Bar{Task: t, Row: i, X0: x0, X1: x1, Y: yc})

		if t.Milestone {
			d.Add(diamond(x0, yc, barHalf, "#000000"))
			d.Add(render.Text{
				X: x0 + 8, Y: yc + cfg.FontSize/3,
				Content: t.Start.Format("2006-01-02"), Size: cfg.FontSize - 2, Color: "#000000",
			})
		} else {
			w := x1 - x0
			if w < 1 {
				w = 1
			}
			d.Add(render.Rect{
				X: x0, Y: yc - barHalf, W: w, H: barHalf * 2,
				Fill: barColor(colors, t.Group), Stroke: "#000000", StrokeWidth: 0.8,
			})
		}

		label := fmt.Sprintf("%*s   %*s", maxID, t.ID, maxTitle, t.Title)
		d.Add(render.Text{
			X: marginLeft - 10, Y: yc + cfg.FontSize/3,
			Content: label, Size: cfg.FontSize, Color: "#333333",
			Anchor: render.AnchorEnd, Mono: true,
		})
	}

	addDependencyArrows(d, layout.Bars, barHalf, cfg)

	return layout, nil
}

// addDependencyArrows draws a connector per dependency: a horizontal segment
// at the predecessor's row from its finish, then a vertical arrow into the
// successor's start. Unknown predecessor IDs are skipped.
func addDependencyArrows(d *render.Drawing, bars []Bar, barHalf float64, cfg config.GanttConfig) {
	byID := make(map[string]Bar)
	for _, b := range bars {
		if b.Task.ID != "" {
			byID[b.Task.ID] = b
		}
	}

	for _, succ := range bars {
		for _, depID := range succ.Task.DependsOn {
			pred, ok := byID[depID]
			if !ok {
				continue
			}
			fromX := pred.X1
			if pred.Task.Milestone {
				fromX = pred.X0
			}
			toX := succ.X0

			d.Add(render.Line{X1: fromX, Y1: pred.Y, X2: toX, Y2: pred.Y, Color: cfg.ArrowColor, Width: cfg.ArrowWidth})

			// Vertical leg ending in an arrowhead at the successor's bar edge.
			dir := 1.0
			tipY := succ.Y - barHalf
			if succ.Y < pred.Y {
				dir = -1.0
				tipY = succ.Y + barHalf
			}
			headLen := 5.0
			d.Add(render.Line{X1: toX, Y1: pred.Y, X2: toX, Y2: tipY - dir*headLen, Color: cfg.ArrowColor, Width: cfg.ArrowWidth})
			d.Add(render.Polygon{
				X:    []float64{toX - 3, toX + 3, toX},
				Y:    []float64{tipY - dir*headLen, tipY - dir*headLen, tipY},
				Fill: cfg.ArrowColor,
			})
		}
	}
}

// Legend builds the separate legend drawing: one swatch per group plus the
// milestone diamond entry.
func Legend(tasks []domain.Task, cfg config.GanttConfig) *render.Drawing {
	colors := GroupColors(tasks)
	groups := sortedGroups(colors)

	const (
		rowH    = 26.0
		swatch  = 16.0
		marginX = 20.0
		headerH = 40.0
		legendW = 260.0
	)

	height := headerH + float64(len(groups)+1)*rowH + 15
	d := &render.Drawing{Width: legendW, Height: height, Background: "#ffffff"}

	d.Add(render.Text{
		X: legendW / 2, Y: 25, Content: "Main Packages Legend",
		Size: cfg.FontSize + 2, Color: "#333333", Anchor: render.AnchorMiddle, Bold: true,
	})

	y := headerH
	for _, g := range groups {
		d.Add(render.Rect{X: marginX, Y: y, W: swatch, H: swatch, Fill: colors[g]})
		d.Add(render.Text{
			X: marginX + swatch + 10, Y: y + swatch - 3,
			Content: g, Size: cfg.FontSize, Color: "#333333",
		})
		y += rowH
	}

	d.Add(diamond(marginX+swatch/2, y+swatch/2, swatch/2, "#000000"))
	d.Add(render.Text{
		X: marginX + swatch + 10, Y: y + swatch - 3,
		Content: "Milestone", Size: cfg.FontSize, Color: "#333333",
	})

	return d
}

func barColor(colors map[string]string, group string) string {
	if c, ok := colors[group]; ok {
		return c
	}
	return defaultBarColor
}

func diamond(cx, cy, r float64, fill string) render.Polygon {
	return render.Polygon{
		X:    []float64{cx - r, cx, cx + r, cx},
		Y:    []float64{cy, cy - r, cy, cy + r},
		Fill: fill,
	}
}

func timeBounds(tasks []domain.Task) (time.Time, time.Time) {
	min, max := tasks[0].Start, tasks[0].Finish
	for _, t := range tasks[1:] {
		if t.Start.Before(min) {
			min = t.Start
		}
		if t.Finish.After(max) {
			max = t.Finish
		}
	}
	return min, max
}
