// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todos/internal/task"
)

const (
	// ListSeparator is the separator line for list sections.
	ListSeparator = "------------"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {TEXT}\n" (4-wide right-aligned number, two spaces, marker, text)
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, marker(t.Completed), normalizeText(t.Text))
}

// FormatListHeader formats a list section header.
func FormatListHeader(w io.Writer, name string, isDefault bool) {
	if isDefault {
		name += " [default]"
	}
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, name)
	fmt.Fprintln(w, ListSeparator)
}

// FormatListName formats a list name for the lists command.
// Format: "{NAME}[ [default]]  {OPEN}/{TOTAL}\n"
func FormatListName(w io.Writer, name string, isDefault bool, open, total int) {
	if isDefault {
		name += " [default]"
	}
	fmt.Fprintf(w, "%s  %d/%d\n", name, open, total)
}

func marker(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// normalizeText keeps a task on one line: newlines become spaces.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
