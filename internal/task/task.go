// Package task defines the task entity and its persisted record format.
package task

import (
	"errors"
	"strings"
)

// ErrEmptyText is returned when a task is created with blank text.
var ErrEmptyText = errors.New("task text required")

// Task represents a single to-do entry.
type Task struct {
	// ID is an opaque identifier assigned when the task enters a list.
	// It is stable for the lifetime of the process and never persisted.
	ID string

	// Text is the display label. Never blank.
	Text string

	Completed bool
}

// New creates an open task. The emptiness check trims whitespace; the
// text itself is kept as supplied.
func New(id, text string) (Task, error) {
	if IsBlank(text) {
		return Task{}, ErrEmptyText
	}
	return Task{ID: id, Text: text}, nil
}

// IsBlank reports whether text is empty after trimming whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
