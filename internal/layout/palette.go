package layout

import (
	"sort"
	"strings"

	"github.com/planviz/planviz/internal/domain"
)

// palette holds the group bar colors, assigned in first-appearance order.
var palette = []string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

// defaultBarColor is used when a group somehow has no palette entry.
const defaultBarColor = "#66bb6a"

// GroupColors assigns a palette color to every distinct task group, in the
// order groups first appear.
func GroupColors(tasks []domain.Task) map[string]string {
	colors := make(map[string]string)
	i := 0
	for _, t := range tasks {
		if _, seen := colors[t.Group]; seen {
			continue
		}
		colors[t.Group] = palette[i%len(palette)]
		i++
	}
	return colors
}

// sortedGroups orders group names by the priority of their leading letter
// (A through H, then M), then alphabetically. Used for the legend.
func sortedGroups(colors map[string]string) []string {
	const priority = "ABCDEFGHM"

	key := func(name string) int {
		name = strings.TrimSpace(name)
		if name == "" {
			return len(priority) + 1
		}
		first := strings.ToUpper(name[:1])
		if i := strings.Index(priority, first); i >= 0 {
			return i
		}
		return len(priority)
	}

	groups := make([]string, 0, len(colors))
	for g := range colors {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		ki, kj := key(groups[i]), key(groups[j])
		if ki != kj {
			return ki < kj
		}
		return groups[i] < groups[j]
	})
	return groups
}
