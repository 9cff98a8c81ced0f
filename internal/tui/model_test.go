package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"todos/internal/tasklist"
	"todos/internal/testutil"
)

func newTestModel(t *testing.T, kv *testutil.FakeStore) Model {
	t.Helper()
	ctx := context.Background()
	screen := NewScreen()
	list := tasklist.New(kv, tasklist.WithView(screen))
	if err := list.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	return New(ctx, list, screen)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func addTask(t *testing.T, m Model, text string) Model {
	t.Helper()
	m = press(t, m, runes(text))
	return press(t, m, enter)
}

func TestModel_TypingAndEnterAddsTask(t *testing.T) {
	kv := testutil.NewFakeStore()
	m := newTestModel(t, kv)

	m = addTask(t, m, "Buy milk")

	if m.screen.Len() != 1 || m.screen.rows[0].text != "Buy milk" {
		t.Fatalf("unexpected rows: %#v", m.screen.rows)
	}
	if m.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", m.input.Value())
	}
	got, _ := kv.Value("todos")
	if got != `[{"text":"Buy milk","completed":false}]` {
		t.Errorf("unexpected record: %s", got)
	}
}

func TestModel_EmptyInputShowsBlockingWarning(t *testing.T) {
	kv := testutil.NewFakeStore()
	m := newTestModel(t, kv)

	m = press(t, m, runes("   "))
	m = press(t, m, enter)

	if m.screen.warning != tasklist.EmptyTextWarning {
		t.Fatalf("expected warning, got %q", m.screen.warning)
	}
	if kv.Writes() != 0 {
		t.Errorf("expected no write, got %d", kv.Writes())
	}
	if !strings.Contains(m.View(), tasklist.EmptyTextWarning) {
		t.Error("expected warning rendered")
	}

	// Typing is ignored while the warning shows
	m = press(t, m, runes("x"))
	if m.input.Value() != "   " {
		t.Errorf("expected input unchanged while warning shows, got %q", m.input.Value())
	}

	m = press(t, m, esc)
	if m.screen.warning != "" {
		t.Error("expected warning dismissed")
	}
}

func TestModel_ToggleAndDeleteFromList(t *testing.T) {
	kv := testutil.NewFakeStore()
	m := newTestModel(t, kv)
	m = addTask(t, m, "Buy milk")
	m = addTask(t, m, "Walk dog")

	m = press(t, m, tab)
	if m.focus != focusList {
		t.Fatal("expected list focus after tab")
	}

	m = press(t, m, space)
	if !m.screen.rows[0].completed {
		t.Error("expected first row completed")
	}

	m = press(t, m, down)
	m = press(t, m, runes("d"))
	if m.screen.Len() != 1 {
		t.Fatalf("expected 1 row after delete, got %d", m.screen.Len())
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.cursor)
	}

	got, _ := kv.Value("todos")
	want := `[{"text":"Buy milk","completed":true}]`
	if got != want {
		t.Errorf("expected record %s, got %s", want, got)
	}
}

func TestModel_ToggleOnEmptyListIsNoop(t *testing.T) {
	kv := testutil.NewFakeStore()
	m := newTestModel(t, kv)
	m = press(t, m, tab)

	m = press(t, m, runes("x"))
	m = press(t, m, runes("d"))

	if kv.Writes() != 0 {
		t.Errorf("expected no writes, got %d", kv.Writes())
	}
	if m.status != "" {
		t.Errorf("expected no status, got %q", m.status)
	}
}

func TestModel_WriteErrorShownInStatus(t *testing.T) {
	kv := testutil.NewFakeStore()
	m := newTestModel(t, kv)
	kv.SetErr = errors.New("quota exceeded")

	m = addTask(t, m, "Buy milk")

	if m.screen.Len() != 0 {
		t.Errorf("expected no row after failed write, got %d", m.screen.Len())
	}
	if !strings.Contains(m.status, "quota exceeded") {
		t.Errorf("expected status to carry the error, got %q", m.status)
	}
	if m.input.Value() != "Buy milk" {
		t.Errorf("expected input kept after failed write, got %q", m.input.Value())
	}
}

func TestModel_LoadsExistingRecord(t *testing.T) {
	kv := testutil.NewFakeStore()
	kv.Put("todos", `[{"text":"Buy milk","completed":true}]`)
	m := newTestModel(t, kv)

	view := m.View()
	if !strings.Contains(view, "[x]") || !strings.Contains(view, "Buy milk") {
		t.Errorf("expected completed row rendered, got:\n%s", view)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t, testutil.NewFakeStore())

	// q types into the input while it has focus
	m = press(t, m, runes("q"))
	if m.input.Value() != "q" {
		t.Errorf("expected q typed into input, got %q", m.input.Value())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected ctrl+c to quit")
	}
}

func TestModel_LongTextIsNotTruncated(t *testing.T) {
	kv := testutil.NewFakeStore()
	m := newTestModel(t, kv)
	text := strings.Repeat("a", 300)

	m = addTask(t, m, text)

	if m.screen.Len() != 1 || m.screen.rows[0].text != text {
		t.Fatalf("expected one row with the full text, got %#v", m.screen.rows)
	}
	got, _ := kv.Value("todos")
	if !strings.Contains(got, text) {
		t.Errorf("expected full text persisted, got %d bytes", len(got))
	}
}
