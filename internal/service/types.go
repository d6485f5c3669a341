// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"fmt"
	"strings"
)

// DefaultDateLayout renders creation dates as month/day/year.
const DefaultDateLayout = "1/2/2006"

// Priority is a task's priority tag.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority maps user input to a Priority (case-insensitive, trimmed).
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	default:
		return "", fmt.Errorf("invalid priority: %s", s)
	}
}

// Filter selects a subsequence of tasks.
type Filter string

const (
	FilterAll          Filter = "all"
	FilterHighPriority Filter = "high"
	FilterActive       Filter = "active"
	FilterCompleted    Filter = "completed"
)

// Match reports whether t is selected by f.
// Unrecognized filters match nothing.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterAll:
		return true
	case FilterHighPriority:
		return t.Priority == PriorityHigh
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return false
	}
}

// Task represents a single task item.
type Task struct {
	ID          string
	Text        string
	Priority    Priority
	Completed   bool
	CreatedDate string // display only
}

// Stats aggregates counts over the whole store.
type Stats struct {
	Total        int
	Completed    int
	HighPriority int
	Pending      int
}

// ValidationError reports input the store refuses to accept.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
