// Package domain defines the chart input records and domain errors.
package domain

import "time"

// DefaultGroup is assigned to tasks without an explicit group.
const DefaultGroup = "Default"

// Task is one row of project data: a bar on the Gantt chart, or a point on
// the milestone timeline when Milestone is set.
type Task struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	Finish    time.Time `json:"finish"`
	Group     string    `json:"group,omitempty"`
	Milestone bool      `json:"milestone,omitempty"`
	DependsOn []string  `json:"depends_on,omitempty"`
}

// Days returns the task span in days. Milestones span zero days.
func (t Task) Days() float64 {
	return t.Finish.Sub(t.Start).Hours() / 24
}

// WBSRow is one row of a work-breakdown-structure table: a dotted
// hierarchical ID and its title.
type WBSRow struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
