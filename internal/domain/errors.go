package domain

import "fmt"

// ErrorCode represents a domain error code.
type ErrorCode string

const (
	ErrCodeMissingColumn ErrorCode = "MISSING_COLUMN"
	ErrCodeBadDate       ErrorCode = "BAD_DATE"
	ErrCodeEmptyTable    ErrorCode = "EMPTY_TABLE"
	ErrCodeNoMilestones  ErrorCode = "NO_MILESTONES"
	ErrCodeBadID         ErrorCode = "BAD_ID"
	ErrCodeMissingParent ErrorCode = "MISSING_PARENT"
	ErrCodeRenderFailed  ErrorCode = "RENDER_FAILED"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents an error in the domain layer with context.
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewMissingColumnError creates an error for a CSV missing a required column.
func NewMissingColumnError(column string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingColumn,
		Message: fmt.Sprintf("CSV must include a %q column", column),
		Context: map[string]interface{}{"column": column},
	}
}

// NewBadDateError creates an error for an unparsable date value.
func NewBadDateError(column, value string, row int) *DomainError {
	return &DomainError{
		Code:    ErrCodeBadDate,
		Message: fmt.Sprintf("row %d: cannot parse %s date %q", row, column, value),
		Context: map[string]interface{}{
			"column": column,
			"value":  value,
			"row":    row,
		},
	}
}

// NewEmptyTableError creates an error for a CSV with no usable rows.
func NewEmptyTableError(path string) *DomainError {
	return &DomainError{
		Code:    ErrCodeEmptyTable,
		Message: fmt.Sprintf("no usable rows in %s", path),
		Context: map[string]interface{}{"path": path},
	}
}

// NewNoMilestonesError creates an error for a table without milestone rows.
func NewNoMilestonesError() *DomainError {
	return &DomainError{
		Code:    ErrCodeNoMilestones,
		Message: "no milestones found (Milestone=true)",
		Context: map[string]interface{}{},
	}
}

// NewBadIDError creates an error for an unparsable hierarchical ID.
func NewBadIDError(id string, reason error) *DomainError {
	return &DomainError{
		Code:    ErrCodeBadID,
		Message: fmt.Sprintf("invalid WBS ID %q: %v", id, reason),
		Context: map[string]interface{}{"id": id},
	}
}

// NewMissingParentError creates an error for a WBS row whose parent ID has no row.
func NewMissingParentError(id, parent string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingParent,
		Message: fmt.Sprintf("WBS node %q references missing parent %q", id, parent),
		Context: map[string]interface{}{
			"id":     id,
			"parent": parent,
		},
	}
}

// NewRenderError creates an error for a failed image export.
func NewRenderError(format string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeRenderFailed,
		Message: fmt.Sprintf("failed to render %s output: %v", format, err),
		Context: map[string]interface{}{"format": format},
	}
}

// NewInternalError creates an internal error.
func NewInternalError(err error) *DomainError {
	ctx := map[string]interface{}{}
	if err != nil {
		ctx["cause"] = err.Error()
	}
	return &DomainError{
		Code:    ErrCodeInternalError,
		Message: "An internal error occurred",
		Context: ctx,
	}
}
