// Package scheduling defines the error taxonomy shared by the scheduling
// engine packages (availability, reservations, blocks, calendar).
package scheduling

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed caller input (bad date or month format,
// unknown action, missing required field). Callers can always fix it; it is
// never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a missing resource or reservation.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// TransitionError reports a status-machine rule violation. It carries both
// the current and the attempted status so the caller can render a precise
// message instead of a generic bad request.
type TransitionError struct {
	Current   string
	Attempted string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %q to %q", e.Current, e.Attempted)
}

// Conflict describes one existing assignment that intersects a proposed range.
type Conflict struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// ConflictError reports an overlap, detected either by the advisory overlap
// guard or by translating a store exclusion-constraint violation. Both paths
// produce this same shape so callers have one error contract.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return "requested range is no longer available"
	}
	labels := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		labels[i] = fmt.Sprintf("%s [%s, %s)", c.Label, c.DateFrom, c.DateTo)
	}
	return "requested range conflicts with: " + strings.Join(labels, ", ")
}

// StoreError wraps a backing-store failure. It is propagated as an opaque
// failure and logged with context, never silently swallowed.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
