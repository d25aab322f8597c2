package main

import (
	"errors"
	"testing"

	"github.com/planviz/planviz/internal/domain"
)

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name:     "missing column",
			err:      domain.NewMissingColumnError("Task"),
			expected: ExitBadInput,
		},
		{
			name:     "bad date",
			err:      domain.NewBadDateError("Start", "not-a-date", 3),
			expected: ExitBadInput,
		},
		{
			name:     "bad WBS id",
			err:      domain.NewBadIDError("1..2", errors.New("empty segment")),
			expected: ExitBadInput,
		},
		{
			name:     "missing parent",
			err:      domain.NewMissingParentError("1.1", "1"),
			expected: ExitBadInput,
		},
		{
			name:     "empty table",
			err:      domain.NewEmptyTableError("tasks.csv"),
			expected: ExitEmptyInput,
		},
		{
			name:     "no milestones",
			err:      domain.NewNoMilestonesError(),
			expected: ExitEmptyInput,
		},
		{
			name:     "render failure",
			err:      domain.NewRenderError("png", errors.New("disk full")),
			expected: ExitRenderFailed,
		},
		{
			name:     "internal error",
			err:      domain.NewInternalError(errors.New("boom")),
			expected: ExitGeneralError,
		},
		{
			name:     "plain error",
			err:      errors.New("something else"),
			expected: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := mapErrorToExitCode(tt.err); result != tt.expected {
				t.Errorf("mapErrorToExitCode() = %d, expected %d", result, tt.expected)
			}
		})
	}
}
