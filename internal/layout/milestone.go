package layout

import (
	"sort"
	"time"

	"github.com/planviz/planviz/internal/config"
	"github.com/planviz/planviz/internal/domain"
	"github.com/planviz/planviz/internal/render"
)

const (
	timelinePad     = 10 * 24 * time.Hour // axis padding around first/last milestone
	timelineMarginX = 50.0
	bandHalfHeight  = 10.0
	gradientSteps   = 48

	bandColorLeft  = "#4ea72e"
	bandColorMid   = "#d0e1cd"
	bandColorRight = "#e9f1e8"
)

// Marker is the computed geometry for one milestone.
type Marker struct {
	Task  domain.Task
	X     float64
	Level int // stagger level; positive is above the center line
}

// MilestoneLayout is the computed milestone timeline.
type MilestoneLayout struct {
	Drawing *render.Drawing
	Scale   TimeScale
	Markers []Marker
}

// Milestones lays out a timeline of the milestone-flagged tasks.
// Each milestone becomes a diamond on a central band at its start date, with
// its label staggered above and below the band to reduce overlap.
func Milestones(tasks []domain.Task, title string, cfg config.MilestoneConfig) (*MilestoneLayout, error) {
	var stones []domain.Task
	for _, t := range tasks {
		if t.Milestone {
			stones = append(stones, t)
		}
	}
	if len(stones) == 0 {
		return nil, domain.NewNoMilestonesError()
	}

	sort.SliceStable(stones, func(i, j int) bool {
		return stones[i].Start.Before(stones[j].Start)
	})

	axisMin := stones[0].Start.Add(-timelinePad)
	axisMax := stones[len(stones)-1].Start.Add(timelinePad)

	d := &render.Drawing{Width: cfg.Width, Height: cfg.Height, Background: "#ffffff"}
	scale := NewTimeScale(axisMin, axisMax, timelineMarginX, cfg.Width-timelineMarginX)

	cy := cfg.Height * 0.55
	levels := cfg.LevelSequence
	if len(levels) == 0 {
		levels = []int{3, -3, 2, -2, 1, -1}
	}
	maxLevel := 0
	for _, l := range levels {
		if a := abs(l); a > maxLevel {
			maxLevel = a
		}
	}
	// Vertical pixels per stagger level, leaving headroom for the labels.
	levelUnit := (cy - 40) / (float64(maxLevel) + 1.5)

	d.Add(render.Text{
		X: cfg.Width / 2, Y: 28,
		Content: title, Size: cfg.TitleFontSize, Color: "#333333",
		Anchor: render.AnchorMiddle, Bold: true,
	})

	addTimelineBand(d, scale.X0, scale.X1, cy)

	// Month labels along the bottom edge.
	for _, tick := range scale.MonthTicks() {
		d.Add(render.Text{
			X: scale.X(tick), Y: cfg.Height - 12,
			Content: tick.Format("Jan 2006"), Size: cfg.FontSize - 1,
			Color: "#666666", Anchor: render.AnchorMiddle,
		})
	}

	layout := &MilestoneLayout{Drawing: d, Scale: scale}

	for i, t := range stones {
		x := scale.X(t.Start)
		level := levels[i%len(levels)]
		layout.Markers = append(layout.Markers, Marker{Task: t, X: x, Level: level})

		labelY := cy - float64(level)*levelUnit

		d.Add(render.Line{X1: x, Y1: cy, X2: x, Y2: labelY, Color: cfg.LineColor, Width: 1})
		d.Add(diamond(x, cy, cfg.MarkerSize, cfg.MarkerColor))

		lines := render.Wrap(t.Title, cfg.MaxLabelChars, cfg.MaxLabelLines)
		lineH := cfg.FontSize * 1.25

		if level > 0 {
			// Stack label lines upward from the connector tip, date on top.
			y := labelY - 8
			d.Add(render.Text{
				X: x, Y: y - float64(len(lines))*lineH,
				Content: t.Start.Format("Jan 02, 2006"), Size: cfg.FontSize - 1,
				Color: "#333333", Anchor: render.AnchorMiddle,
			})
			for j := len(lines) - 1; j >= 0; j-- {
				d.Add(render.Text{
					X: x, Y: y - float64(len(lines)-1-j)*lineH,
					Content: lines[j], Size: cfg.FontSize, Color: "#000000",
					Anchor: render.AnchorMiddle, Bold: true,
				})
			}
		} else {
			y := labelY + 8 + cfg.FontSize
			for j, line := range lines {
				d.Add(render.Text{
					X: x, Y: y + float64(j)*lineH,
					Content: line, Size: cfg.FontSize, Color: "#000000",
					Anchor: render.AnchorMiddle, Bold: true,
				})
			}
			d.Add(render.Text{
				X: x, Y: y + float64(len(lines))*lineH,
				Content: t.Start.Format("Jan 02, 2006"), Size: cfg.FontSize - 1,
				Color: "#333333", Anchor: render.AnchorMiddle,
			})
		}
	}

	return layout, nil
}

// addTimelineBand draws the central band as a left-to-right green gradient
// (approximated in segments) ending in an arrowhead.
func addTimelineBand(d *render.Drawing, x0, x1, cy float64) {
	headW := (x1 - x0) * 0.03
	if headW < 14 {
		headW = 14
	}
	bodyW := x1 - x0 - headW

	step := bodyW / gradientSteps
	for i := 0; i < gradientSteps; i++ {
		t := float64(i) / (gradientSteps - 1)
		var fill string
		if t < 0.5 {
			fill = render.LerpHex(bandColorLeft, bandColorMid, t*2)
		} else {
			fill = render.LerpHex(bandColorMid, bandColorRight, (t-0.5)*2)
		}
		d.Add(render.Rect{
			X: x0 + float64(i)*step, Y: cy - bandHalfHeight,
			W: step + 0.5, H: bandHalfHeight * 2,
			Fill: fill,
		})
	}

	d.Add(render.Polygon{
		X:    []float64{x0 + bodyW, x0 + bodyW, x1},
		Y:    []float64{cy - bandHalfHeight, cy + bandHalfHeight, cy},
		Fill: bandColorRight,
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
