// Package tui is the interactive terminal view of a task list.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todos/internal/task"
	"todos/internal/tasklist"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Model is the bubbletea model. It renders only from its Screen; every
// change goes through the task list, which projects onto the Screen.
type Model struct {
	ctx    context.Context
	list   *tasklist.List
	screen *Screen

	input  textinput.Model
	keys   keyMap
	help   help.Model
	focus  focusArea
	cursor int
	status string
	width  int
}

// New creates a model for list. screen must be the View the list was
// constructed with.
func New(ctx context.Context, list *tasklist.List, screen *Screen) Model {
	ti := textinput.New()
	ti.Placeholder = "Add a new task..."
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()

	return Model{
		ctx:    ctx,
		list:   list,
		screen: screen,
		input:  ti,
		keys:   newKeyMap(),
		help:   help.New(),
		focus:  focusInput,
	}
}

// Run starts the program and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal view: %w", err)
	}
	return nil
}

// Len returns the number of rows on screen.
func (m Model) Len() int {
	return m.screen.Len()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.forceQuit) {
		return m, tea.Quit
	}

	// A warning blocks everything until dismissed
	if m.screen.warning != "" {
		if key.Matches(msg, m.keys.dismiss) {
			m.screen.warning = ""
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.focus) {
		return m.switchFocus()
	}

	if m.focus == focusInput {
		return m.updateInput(msg)
	}
	return m.updateList(msg)
}

func (m Model) switchFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		return m, nil
	}
	m.focus = focusInput
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.submit) {
		m.status = ""
		if _, err := m.list.Add(m.ctx, m.input.Value()); err != nil && !errors.Is(err, task.ErrEmptyText) {
			m.status = err.Error()
		}
		if m.screen.takeClearInput() {
			m.input.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.down):
		if m.cursor < m.screen.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.toggle):
		if id, ok := m.selected(); ok {
			m.status = ""
			if _, err := m.list.Toggle(m.ctx, id); err != nil && !errors.Is(err, tasklist.ErrTaskNotFound) {
				m.status = err.Error()
			}
		}
	case key.Matches(msg, m.keys.remove):
		if id, ok := m.selected(); ok {
			m.status = ""
			if _, err := m.list.Delete(m.ctx, id); err != nil && !errors.Is(err, tasklist.ErrTaskNotFound) {
				m.status = err.Error()
			}
			m.cursor = clampCursor(m.cursor, m.screen.Len())
		}
	}
	return m, nil
}

func (m Model) selected() (string, bool) {
	if m.cursor < 0 || m.cursor >= m.screen.Len() {
		return "", false
	}
	return m.screen.rows[m.cursor].id, true
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("todos · " + m.list.Key()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.screen.warning != "" {
		b.WriteString(warningStyle.Render(m.screen.warning))
		b.WriteString("\n\n")
	}

	if m.screen.Len() == 0 {
		b.WriteString(emptyStyle.Render("No tasks yet."))
		b.WriteString("\n")
	}
	for i, r := range m.screen.rows {
		b.WriteString(m.renderRow(i, r))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("error: " + m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.focus == focusInput {
		b.WriteString(m.help.View(inputHelp{m.keys}))
	} else {
		b.WriteString(m.help.View(listHelp{m.keys}))
	}
	return b.String()
}

func (m Model) renderRow(i int, r row) string {
	mark := "[ ]"
	text := r.text
	if r.completed {
		mark = "[x]"
		text = completedStyle.Render(text)
	}
	line := mark + " " + text
	if m.focus == focusList && i == m.cursor {
		return cursorRowStyle.Render("› " + line)
	}
	return rowStyle.Render("  " + line)
}
