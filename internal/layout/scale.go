// Package layout computes chart geometry: it turns parsed project data into
// render.Drawing primitives. Nothing here knows about output formats.
package layout

import "time"

// TimeScale linearly maps instants in [Min, Max] to x positions in [X0, X1].
type TimeScale struct {
	Min, Max time.Time
	X0, X1   float64
}

// NewTimeScale creates a scale over the given time window and pixel span.
func NewTimeScale(min, max time.Time, x0, x1 float64) TimeScale {
	return TimeScale{Min: min, Max: max, X0: x0, X1: x1}
}

// X returns the pixel position of t. A degenerate window maps to the center.
func (s TimeScale) X(t time.Time) float64 {
	span := s.Max.Sub(s.Min)
	if span <= 0 {
		return (s.X0 + s.X1) / 2
	}
	frac := float64(t.Sub(s.Min)) / float64(span)
	return s.X0 + frac*(s.X1-s.X0)
}

// MonthTicks returns the first-of-month instants inside the scale's window.
func (s TimeScale) MonthTicks() []time.Time {
	var ticks []time.Time
	t := time.Date(s.Min.Year(), s.Min.Month(), 1, 0, 0, 0, 0, s.Min.Location())
	if t.Before(s.Min) {
		t = t.AddDate(0, 1, 0)
	}
	for !t.After(s.Max) {
		ticks = append(ticks, t)
		t = t.AddDate(0, 1, 0)
	}
	return ticks
}
