// Package store persists project tables in SQLite so charts can be
// rendered without re-reading the source CSV files.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/planviz/planviz/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id         TEXT NOT NULL DEFAULT '',
	title      TEXT NOT NULL,
	start      TEXT NOT NULL,
	finish     TEXT NOT NULL,
	grp        TEXT NOT NULL DEFAULT '',
	milestone  INTEGER NOT NULL DEFAULT 0,
	depends_on TEXT NOT NULL DEFAULT '',
	position   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS wbs_nodes (
	id       TEXT PRIMARY KEY,
	title    TEXT NOT NULL,
	position INTEGER NOT NULL
);
`

const dateLayout = "2006-01-02"

// Store is a SQLite-backed holder for one project's tables.
type Store struct {
	db     *sql.DB
	closed bool
}

// Open opens (and initializes) the database at dsn.
// The dsn can be a file path or ":memory:" for an in-memory database.
func Open(dsn string) (*Store, error) {
	connStr := dsn
	if !strings.Contains(dsn, "?") {
		connStr += "?"
	} else {
		connStr += "&"
	}
	connStr += "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on&_synchronous=NORMAL"

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// ImportTasks replaces the stored task table with the given rows.
func (s *Store) ImportTasks(ctx context.Context, tasks []domain.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	query := `
		INSERT INTO tasks (id, title, start, finish, grp, milestone, depends_on, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, t := range tasks {
		milestone := 0
		if t.Milestone {
			milestone = 1
		}
		_, err := tx.ExecContext(ctx, query,
			t.ID,
			t.Title,
			t.Start.UTC().Format(dateLayout),
			t.Finish.UTC().Format(dateLayout),
			t.Group,
			milestone,
			strings.Join(t.DependsOn, ","),
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert task %q: %w", t.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadTasks returns the stored task table in its original row order.
func (s *Store) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	query := `
		SELECT id, title, start, finish, grp, milestone, depends_on
		FROM tasks ORDER BY position ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var start, finish, dependsOn string
		var milestone int
		if err := rows.Scan(&t.ID, &t.Title, &start, &finish, &t.Group, &milestone, &dependsOn); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		if t.Start, err = time.Parse(dateLayout, start); err != nil {
			return nil, fmt.Errorf("failed to parse stored start date %q: %w", start, err)
		}
		if t.Finish, err = time.Parse(dateLayout, finish); err != nil {
			return nil, fmt.Errorf("failed to parse stored finish date %q: %w", finish, err)
		}
		t.Milestone = milestone != 0
		if dependsOn != "" {
			t.DependsOn = strings.Split(dependsOn, ",")
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}
	return tasks, nil
}

// ImportWBS replaces the stored WBS table with the given rows.
func (s *Store) ImportWBS(ctx context.Context, rows []domain.WBSRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM wbs_nodes"); err != nil {
		return fmt.Errorf("failed to clear wbs_nodes: %w", err)
	}

	query := "INSERT INTO wbs_nodes (id, title, position) VALUES (?, ?, ?)"
	for i, row := range rows {
		if _, err := tx.ExecContext(ctx, query, row.ID, row.Title, i); err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
				strings.Contains(err.Error(), "PRIMARY KEY constraint failed") {
				return fmt.Errorf("duplicate WBS ID %q", row.ID)
			}
			return fmt.Errorf("failed to insert WBS node %q: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadWBS returns the stored WBS rows in their original order.
func (s *Store) LoadWBS(ctx context.Context) ([]domain.WBSRow, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title FROM wbs_nodes ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to load wbs_nodes: %w", err)
	}
	defer rows.Close()

	var out []domain.WBSRow
	for rows.Next() {
		var row domain.WBSRow
		if err := rows.Scan(&row.ID, &row.Title); err != nil {
			return nil, fmt.Errorf("failed to scan WBS node: %w", err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wbs_nodes: %w", err)
	}
	return out, nil
}
