package tasklist

import "todos/internal/task"

// View is the rendering surface a List projects its state onto.
// Every method is called after the model and storage already agree.
type View interface {
	// Clear removes every row.
	Clear()

	// AppendRow inserts a row for t at the end of the list.
	AppendRow(t task.Task)

	// MarkRow sets the completed marker of the row for id.
	MarkRow(id string, completed bool)

	// RemoveRow removes the row for id.
	RemoveRow(id string)

	// Warn shows a blocking message to the user.
	Warn(msg string)

	// ClearInput empties the new-task input field.
	ClearInput()
}

// NopView discards every update. Used by headless callers.
type NopView struct{}

func (NopView) Clear()               {}
func (NopView) AppendRow(task.Task)  {}
func (NopView) MarkRow(string, bool) {}
func (NopView) RemoveRow(string)     {}
func (NopView) Warn(string)          {}
func (NopView) ClearInput()          {}
