// Package csvio reads project tables from CSV files.
//
// Column headers are matched case-insensitively against a canonical set, so
// "Activity Description" and "task" both map to the Task column. Start and
// Finish accept ISO dates plus a handful of common formats; rows without
// dates fall back to a sequential schedule computed from the Duration column.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/planviz/planviz/internal/domain"
)

// DefaultProjectStart anchors the duration-based schedule fallback when a
// table carries durations instead of dates.
var DefaultProjectStart = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options controls CSV parsing.
type Options struct {
	// Delimiter is the field separator. Zero means comma.
	Delimiter rune
	// DateFormat, when set, is tried before the built-in date formats.
	DateFormat string
	// ProjectStart anchors the duration fallback. Zero means DefaultProjectStart.
	ProjectStart time.Time
}

// canonMap normalizes header spellings to canonical column names.
var canonMap = map[string]string{
	"id": "ID", "wbs_id": "ID", "wbs id": "ID", "number": "ID",
	"task": "Task", "activity": "Task", "activity description": "Task", "name": "Task",
	"title": "Title", "task_name": "Title", "description": "Title",
	"duration": "Duration", "duration (days)": "Duration",
	"start": "Start", "start date": "Start",
	"finish": "Finish", "end": "Finish", "end date": "Finish",
	"group": "Group", "phase": "Group", "lane": "Group",
	"milestone":    "Milestone",
	"dependencies": "Dependencies", "depends": "Dependencies", "predecessors": "Dependencies",
}

// dateFormats are tried in order when no format hint is configured.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
}

var depSeparators = regexp.MustCompile(`[,;]`)

// ReadTasks reads a task table from the CSV file at path.
func ReadTasks(path string, opts Options) ([]domain.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	return ReadTasksFrom(f, path, opts)
}

// ReadTasksFrom reads a task table from r. The name is used in error messages.
func ReadTasksFrom(r io.Reader, name string, opts Options) ([]domain.Task, error) {
	records, columns, err := readTable(r, opts)
	if err != nil {
		return nil, err
	}

	if _, ok := columns["Task"]; !ok {
		return nil, domain.NewMissingColumnError("Task")
	}

	var tasks []domain.Task
	var durations []float64
	needSchedule := false

	for i, rec := range records {
		row := i + 2 // header is row 1
		title := strings.TrimSpace(field(rec, columns, "Task"))
		if title == "" {
			continue
		}

		t := domain.Task{
			ID:        strings.TrimSpace(field(rec, columns, "ID")),
			Title:     title,
			Group:     strings.TrimSpace(field(rec, columns, "Group")),
			Milestone: ParseBool(field(rec, columns, "Milestone")),
			DependsOn: SplitDependencies(field(rec, columns, "Dependencies")),
		}
		if t.Group == "" {
			t.Group = domain.DefaultGroup
		}

		t.Start, err = parseDateField(rec, columns, "Start", row, opts)
		if err != nil {
			return nil, err
		}
		t.Finish, err = parseDateField(rec, columns, "Finish", row, opts)
		if err != nil {
			return nil, err
		}

		dur := 1.0
		if s := strings.TrimSpace(field(rec, columns, "Duration")); s != "" {
			if d, perr := strconv.ParseFloat(s, 64); perr == nil && d > 0 {
				dur = d
			}
		}
		durations = append(durations, dur)

		if t.Start.IsZero() || t.Finish.IsZero() {
			needSchedule = true
		}

		tasks = append(tasks, t)
	}

	if len(tasks) == 0 {
		return nil, domain.NewEmptyTableError(name)
	}

	if needSchedule {
		if _, ok := columns["Duration"]; !ok {
			if _, hasStart := columns["Start"]; !hasStart {
				return nil, domain.NewMissingColumnError("Start (or Duration)")
			}
			return nil, domain.NewMissingColumnError("Duration")
		}
		scheduleFromDurations(tasks, durations, projectStart(opts))
	}

	// Milestones are zero-duration points at their start date.
	for i := range tasks {
		if tasks[i].Milestone && !tasks[i].Start.IsZero() {
			tasks[i].Finish = tasks[i].Start
		}
	}

	return tasks, nil
}

// ReadWBS reads a work-breakdown-structure table from the CSV file at path.
func ReadWBS(path string, opts Options) ([]domain.WBSRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	return ReadWBSFrom(f, path, opts)
}

// ReadWBSFrom reads a WBS table from r. The name is used in error messages.
func ReadWBSFrom(r io.Reader, name string, opts Options) ([]domain.WBSRow, error) {
	records, columns, err := readTable(r, opts)
	if err != nil {
		return nil, err
	}

	if _, ok := columns["ID"]; !ok {
		return nil, domain.NewMissingColumnError("ID")
	}
	if _, ok := columns["Title"]; !ok {
		return nil, domain.NewMissingColumnError("Title")
	}

	var rows []domain.WBSRow
	for _, rec := range records {
		id := strings.TrimSpace(field(rec, columns, "ID"))
		title := strings.TrimSpace(field(rec, columns, "Title"))
		if id == "" && title == "" {
			continue
		}
		rows = append(rows, domain.WBSRow{ID: id, Title: title})
	}

	if len(rows) == 0 {
		return nil, domain.NewEmptyTableError(name)
	}

	return rows, nil
}

// ParseBool interprets boolean-like CSV values: true/1/yes/y, case-insensitive.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

// SplitDependencies splits a delimited dependency list on commas or semicolons.
func SplitDependencies(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var deps []string
	for _, p := range depSeparators.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			deps = append(deps, p)
		}
	}
	return deps
}

// ParseDate parses a date value using the optional hint format first, then the
// built-in formats.
func ParseDate(value, hint string) (time.Time, error) {
	value = strings.TrimSpace(value)
	formats := dateFormats
	if hint != "" {
		formats = append([]string{hint}, dateFormats...)
	}
	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// readTable reads all records and builds the canonical header index.
func readTable(r io.Reader, opts Options) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int)
	for i, col := range header {
		key := strings.ToLower(strings.TrimSpace(col))
		canon, ok := canonMap[key]
		if !ok {
			canon = strings.TrimSpace(col)
		}
		if _, exists := columns[canon]; !exists {
			columns[canon] = i
		}
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		records = append(records, rec)
	}

	return records, columns, nil
}

func field(rec []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func parseDateField(rec []string, columns map[string]int, name string, row int, opts Options) (time.Time, error) {
	value := strings.TrimSpace(field(rec, columns, name))
	if value == "" {
		return time.Time{}, nil
	}
	t, err := ParseDate(value, opts.DateFormat)
	if err != nil {
		return time.Time{}, domain.NewBadDateError(name, value, row)
	}
	return t, nil
}

// scheduleFromDurations fills missing dates with a sequential schedule: each
// task runs for its duration starting where the previous one finished.
func scheduleFromDurations(tasks []domain.Task, durations []float64, start time.Time) {
	current := start
	for i := range tasks {
		s := current
		f := s.Add(time.Duration(durations[i] * 24 * float64(time.Hour)))
		if tasks[i].Start.IsZero() {
			tasks[i].Start = s
		}
		if tasks[i].Finish.IsZero() {
			tasks[i].Finish = f
		}
		current = f
	}
}

func projectStart(opts Options) time.Time {
	if opts.ProjectStart.IsZero() {
		return DefaultProjectStart
	}
	return opts.ProjectStart
}
