// Package chart ties the pipeline together: it loads project tables from a
// CSV file or the SQLite store, computes a layout, and exports image files.
// Both the CLI and the preview server go through this service.
package chart

import (
	"context"

	"github.com/planviz/planviz/internal/config"
	"github.com/planviz/planviz/internal/csvio"
	"github.com/planviz/planviz/internal/domain"
	"github.com/planviz/planviz/internal/layout"
	"github.com/planviz/planviz/internal/render"
	"github.com/planviz/planviz/internal/store"
	"github.com/planviz/planviz/internal/wbs"
)

// Source selects where project tables come from. Exactly one of CSVPath or
// DBPath should be set; CSVPath wins when both are.
type Source struct {
	CSVPath string
	DBPath  string
}

// Service renders charts from a configured pipeline.
type Service struct {
	cfg *config.Config
}

// NewService creates a chart service using the given configuration.
func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// LoadTasks reads the task table from the source.
func (s *Service) LoadTasks(ctx context.Context, src Source) ([]domain.Task, error) {
	if src.CSVPath != "" {
		return csvio.ReadTasks(src.CSVPath, s.cfg.CSVOptions())
	}

	db, err := store.Open(src.DBPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	tasks, err := db.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, domain.NewEmptyTableError(src.DBPath)
	}
	return tasks, nil
}

// LoadWBS reads the WBS table from the source.
func (s *Service) LoadWBS(ctx context.Context, src Source) ([]domain.WBSRow, error) {
	if src.CSVPath != "" {
		return csvio.ReadWBS(src.CSVPath, s.cfg.CSVOptions())
	}

	db, err := store.Open(src.DBPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.LoadWBS(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NewEmptyTableError(src.DBPath)
	}
	return rows, nil
}

// GanttDrawing builds the Gantt chart drawing for the source.
func (s *Service) GanttDrawing(ctx context.Context, src Source, title string) (*render.Drawing, error) {
	tasks, err := s.LoadTasks(ctx, src)
	if err != nil {
		return nil, err
	}
	l, err := layout.Gantt(tasks, title, s.cfg.Gantt)
	if err != nil {
		return nil, err
	}
	return l.Drawing, nil
}

// MilestoneDrawing builds the milestone timeline drawing for the source.
func (s *Service) MilestoneDrawing(ctx context.Context, src Source, title string) (*render.Drawing, error) {
	tasks, err := s.LoadTasks(ctx, src)
	if err != nil {
		return nil, err
	}
	l, err := layout.Milestones(tasks, title, s.cfg.Milestone)
	if err != nil {
		return nil, err
	}
	return l.Drawing, nil
}

// WBSDrawing builds the work-breakdown-structure drawing for the source.
func (s *Service) WBSDrawing(ctx context.Context, src Source, title string) (*render.Drawing, error) {
	rows, err := s.LoadWBS(ctx, src)
	if err != nil {
		return nil, err
	}
	tree, err := wbs.Build(rows)
	if err != nil {
		return nil, err
	}
	return layout.WBS(tree, title, s.cfg.WBS).Drawing, nil
}

// RenderGantt writes the Gantt chart and its legend, one file per format.
// The legend goes to <prefix>_legend.<format>.
func (s *Service) RenderGantt(ctx context.Context, src Source, title, prefix string, formats []string) ([]string, error) {
	tasks, err := s.LoadTasks(ctx, src)
	if err != nil {
		return nil, err
	}
	l, err := layout.Gantt(tasks, title, s.cfg.Gantt)
	if err != nil {
		return nil, err
	}

	paths, err := render.WriteFiles(l.Drawing, prefix, formats)
	if err != nil {
		return nil, err
	}
	legendPaths, err := render.WriteFiles(layout.Legend(tasks, s.cfg.Gantt), prefix+"_legend", formats)
	if err != nil {
		return nil, err
	}
	return append(paths, legendPaths...), nil
}

// RenderMilestones writes the milestone timeline, one file per format.
func (s *Service) RenderMilestones(ctx context.Context, src Source, title, prefix string, formats []string) ([]string, error) {
	d, err := s.MilestoneDrawing(ctx, src, title)
	if err != nil {
		return nil, err
	}
	return render.WriteFiles(d, prefix, formats)
}

// RenderWBS writes the work-breakdown-structure diagram, one file per format.
func (s *Service) RenderWBS(ctx context.Context, src Source, title, prefix string, formats []string) ([]string, error) {
	d, err := s.WBSDrawing(ctx, src, title)
	if err != nil {
		return nil, err
	}
	return render.WriteFiles(d, prefix, formats)
}

// Import reads both tables from CSV files and stores them in the database.
// Either path may be empty to skip that table.
func (s *Service) Import(ctx context.Context, tasksCSV, wbsCSV, dbPath string) (int, int, error) {
	db, err := store.Open(dbPath)
	if err != nil {
		return 0, 0, err
	}
	defer db.Close()

	var nTasks, nWBS int
	if tasksCSV != "" {
		tasks, err := s.LoadTasks(ctx, Source{CSVPath: tasksCSV})
		if err != nil {
			return 0, 0, err
		}
		if err := db.ImportTasks(ctx, tasks); err != nil {
			return 0, 0, err
		}
		nTasks = len(tasks)
	}
	if wbsCSV != "" {
		rows, err := s.LoadWBS(ctx, Source{CSVPath: wbsCSV})
		if err != nil {
			return nTasks, 0, err
		}
		if err := db.ImportWBS(ctx, rows); err != nil {
			return nTasks, 0, err
		}
		nWBS = len(rows)
	}
	return nTasks, nWBS, nil
}
