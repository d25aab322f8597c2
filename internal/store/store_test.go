package store

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/planviz/planviz/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestImportAndLoadTasks(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tasks := []domain.Task{
		{ID: "T1", Title: "Kickoff", Start: date(2026, 1, 1), Finish: date(2026, 1, 2), Group: "Analysis"},
		{ID: "T2", Title: "Design", Start: date(2026, 1, 3), Finish: date(2026, 2, 15), Group: "Build", DependsOn: []string{"T1", "T0"}},
		{ID: "M1", Title: "Done", Start: date(2026, 2, 15), Finish: date(2026, 2, 15), Milestone: true},
	}
	if err := s.ImportTasks(ctx, tasks); err != nil {
		t.Fatalf("ImportTasks() failed: %v", err)
	}

	got, err := s.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("LoadTasks() failed: %v", err)
	}
	if len(got) != len(tasks) {
		t.Fatalf("loaded %d tasks, want %d", len(got), len(tasks))
	}

	for i := range tasks {
		want := tasks[i]
		if got[i].ID != want.ID || got[i].Title != want.Title || got[i].Group != want.Group {
			t.Errorf("task %d = %+v, want %+v", i, got[i], want)
		}
		if !got[i].Start.Equal(want.Start) || !got[i].Finish.Equal(want.Finish) {
			t.Errorf("task %d dates = %v/%v, want %v/%v", i, got[i].Start, got[i].Finish, want.Start, want.Finish)
		}
		if got[i].Milestone != want.Milestone {
			t.Errorf("task %d Milestone = %v, want %v", i, got[i].Milestone, want.Milestone)
		}
		if !reflect.DeepEqual(got[i].DependsOn, want.DependsOn) {
			t.Errorf("task %d DependsOn = %v, want %v", i, got[i].DependsOn, want.DependsOn)
		}
	}
}

func TestImportTasks_ReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := []domain.Task{{Title: "Old", Start: date(2026, 1, 1), Finish: date(2026, 1, 2)}}
	second := []domain.Task{{Title: "New", Start: date(2026, 2, 1), Finish: date(2026, 2, 2)}}

	if err := s.ImportTasks(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := s.ImportTasks(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadTasks(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "New" {
		t.Errorf("LoadTasks() = %+v, want only the re-imported row", got)
	}
}

func TestImportAndLoadWBS(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rows := []domain.WBSRow{
		{ID: "1", Title: "Planning"},
		{ID: "1.1", Title: "Scope"},
		{ID: "2", Title: "Execution"},
	}
	if err := s.ImportWBS(ctx, rows); err != nil {
		t.Fatalf("ImportWBS() failed: %v", err)
	}

	got, err := s.LoadWBS(ctx)
	if err != nil {
		t.Fatalf("LoadWBS() failed: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("LoadWBS() = %v, want %v", got, rows)
	}
}

func TestImportWBS_DuplicateID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rows := []domain.WBSRow{
		{ID: "1", Title: "Planning"},
		{ID: "1", Title: "Again"},
	}
	if err := s.ImportWBS(ctx, rows); err == nil {
		t.Fatal("ImportWBS() with a duplicate ID should fail")
	}

	// The failed import must not leave partial rows behind.
	got, err := s.LoadWBS(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("LoadWBS() after failed import = %v, want empty", got)
	}
}

func TestLoadTasks_Empty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.LoadTasks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("LoadTasks() on a fresh store = %v, want empty", got)
	}
}

func TestClose_Idempotent(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}
