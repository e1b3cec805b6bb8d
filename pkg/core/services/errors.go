package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gwaste/gwaste/pkg/core/conflict"
	"github.com/gwaste/gwaste/pkg/core/schedule"
)

// ValidationError carries per-field messages for a rejected submission.
// The write was never attempted.
type ValidationError struct {
	Fields schedule.Errors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// ConflictError reports crew members already assigned to another route.
// The write was never attempted.
type ConflictError struct {
	Conflicts []conflict.Conflict
}

func (e *ConflictError) Error() string {
	names := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		names[i] = c.String()
	}
	return fmt.Sprintf("crew already assigned: %s", strings.Join(names, ", "))
}
