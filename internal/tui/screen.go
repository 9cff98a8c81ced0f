package tui

import "todos/internal/task"

type row struct {
	id        string
	text      string
	completed bool
}

// Screen is the projection of a task list that the terminal view renders.
// It implements tasklist.View and is shared by pointer between the list and
// the bubbletea model, so it is only touched from inside Update.
type Screen struct {
	rows       []row
	warning    string
	clearInput bool
}

// NewScreen returns an empty projection.
func NewScreen() *Screen {
	return &Screen{}
}

// Clear implements tasklist.View.
func (s *Screen) Clear() {
	s.rows = nil
}

// AppendRow implements tasklist.View.
func (s *Screen) AppendRow(t task.Task) {
	s.rows = append(s.rows, row{id: t.ID, text: t.Text, completed: t.Completed})
}

// MarkRow implements tasklist.View.
func (s *Screen) MarkRow(id string, completed bool) {
	if i := s.index(id); i >= 0 {
		s.rows[i].completed = completed
	}
}

// RemoveRow implements tasklist.View.
func (s *Screen) RemoveRow(id string) {
	if i := s.index(id); i >= 0 {
		s.rows = append(s.rows[:i], s.rows[i+1:]...)
	}
}

// Warn implements tasklist.View. The warning blocks input until dismissed.
func (s *Screen) Warn(msg string) {
	s.warning = msg
}

// ClearInput implements tasklist.View.
func (s *Screen) ClearInput() {
	s.clearInput = true
}

// Len returns the number of rows.
func (s *Screen) Len() int {
	return len(s.rows)
}

// takeClearInput reports and resets a pending input clear.
func (s *Screen) takeClearInput() bool {
	pending := s.clearInput
	s.clearInput = false
	return pending
}

func (s *Screen) index(id string) int {
	for i, r := range s.rows {
		if r.id == id {
			return i
		}
	}
	return -1
}
