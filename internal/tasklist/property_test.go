package tasklist_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"todos/internal/task"
	"todos/internal/tasklist"
	"todos/internal/testutil"
)

var (
	textGen  = rapid.StringMatching(`[ ]{0,2}[A-Za-z0-9 .,!?é]{0,20}[A-Za-z0-9!?é][ ]{0,2}`)
	blankGen = rapid.StringMatching(`[ \t\n]{0,6}`)
)

// sameEntries compares tasks by the persisted fields only.
func sameEntries(a, b []task.Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Text != b[i].Text || a[i].Completed != b[i].Completed {
			return false
		}
	}
	return true
}

func reload(t *rapid.T, kv *testutil.FakeStore) []task.Task {
	fresh := tasklist.New(kv)
	if err := fresh.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	return fresh.Tasks()
}

func TestProperty_AddAppendsOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		kv := testutil.NewFakeStore()
		l := tasklist.New(kv)
		for _, s := range rapid.SliceOfN(textGen, 0, 5).Draw(t, "existing") {
			if _, err := l.Add(ctx, s); err != nil {
				t.Fatalf("seed add: %v", err)
			}
		}
		before := l.Tasks()
		s := textGen.Draw(t, "text")

		added, err := l.Add(ctx, s)
		if err != nil {
			t.Fatalf("add %q: %v", s, err)
		}

		after := l.Tasks()
		if len(after) != len(before)+1 {
			t.Fatalf("expected %d tasks, got %d", len(before)+1, len(after))
		}
		last := after[len(after)-1]
		if last.ID != added.ID || last.Text != s || last.Completed {
			t.Fatalf("unexpected last task %#v", last)
		}
		if !sameEntries(after[:len(before)], before) {
			t.Fatal("existing tasks changed")
		}
		if !sameEntries(reload(t, kv), after) {
			t.Fatal("reloaded record differs from list")
		}
	})
}

func TestProperty_BlankAddChangesNothing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		kv := testutil.NewFakeStore()
		l := tasklist.New(kv)
		_, _ = l.Add(ctx, "Buy milk")
		writes := kv.Writes()

		_, err := l.Add(ctx, blankGen.Draw(t, "blank"))
		if !errors.Is(err, task.ErrEmptyText) {
			t.Fatalf("expected ErrEmptyText, got %v", err)
		}
		if l.Len() != 1 || kv.Writes() != writes {
			t.Fatal("blank add changed state")
		}
	})
}

func TestProperty_ToggleTwiceRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		kv := testutil.NewFakeStore()
		l := tasklist.New(kv)
		texts := rapid.SliceOfN(textGen, 1, 6).Draw(t, "texts")
		for _, s := range texts {
			_, _ = l.Add(ctx, s)
		}
		for _, tk := range l.Tasks() {
			if rapid.Bool().Draw(t, "pre-toggle") {
				_, _ = l.Toggle(ctx, tk.ID)
			}
		}
		before, _ := kv.Value("todos")
		target, _ := l.At(rapid.IntRange(1, l.Len()).Draw(t, "n"))

		if _, err := l.Toggle(ctx, target.ID); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if _, err := l.Toggle(ctx, target.ID); err != nil {
			t.Fatalf("toggle: %v", err)
		}

		after, _ := kv.Value("todos")
		if after != before {
			t.Fatalf("record changed: %s -> %s", before, after)
		}
	})
}

func TestProperty_DeleteRemovesExactlyOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		kv := testutil.NewFakeStore()
		l := tasklist.New(kv)
		for _, s := range rapid.SliceOfN(textGen, 1, 8).Draw(t, "texts") {
			_, _ = l.Add(ctx, s)
		}
		before := l.Tasks()
		n := rapid.IntRange(1, len(before)).Draw(t, "n")

		if _, err := l.Delete(ctx, before[n-1].ID); err != nil {
			t.Fatalf("delete: %v", err)
		}

		want := append(append([]task.Task{}, before[:n-1]...), before[n:]...)
		got := l.Tasks()
		if len(got) != len(want) {
			t.Fatalf("expected %d tasks, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i].ID != want[i].ID {
				t.Fatalf("order changed at %d", i)
			}
		}
		if !sameEntries(reload(t, kv), want) {
			t.Fatal("record does not reflect the reduced list")
		}
	})
}

// TestProperty_RoundTrip drives random operations and checks after each one
// that a fresh list loaded from the same storage equals the live list.
func TestProperty_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		kv := testutil.NewFakeStore()
		l := tasklist.New(kv)

		pick := func(t *rapid.T) (task.Task, bool) {
			if l.Len() == 0 {
				return task.Task{}, false
			}
			tk, _ := l.At(rapid.IntRange(1, l.Len()).Draw(t, "n"))
			return tk, true
		}

		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				s := rapid.OneOf(textGen, blankGen).Draw(t, "text")
				_, err := l.Add(ctx, s)
				if strings.TrimSpace(s) == "" {
					if !errors.Is(err, task.ErrEmptyText) {
						t.Fatalf("expected ErrEmptyText, got %v", err)
					}
					return
				}
				if err != nil {
					t.Fatalf("add: %v", err)
				}
			},
			"toggle": func(t *rapid.T) {
				tk, ok := pick(t)
				if !ok {
					t.Skip("empty list")
				}
				if _, err := l.Toggle(ctx, tk.ID); err != nil {
					t.Fatalf("toggle: %v", err)
				}
			},
			"delete": func(t *rapid.T) {
				tk, ok := pick(t)
				if !ok {
					t.Skip("empty list")
				}
				if _, err := l.Delete(ctx, tk.ID); err != nil {
					t.Fatalf("delete: %v", err)
				}
			},
			"": func(t *rapid.T) {
				if kv.Writes() == 0 {
					return
				}
				if !sameEntries(reload(t, kv), l.Tasks()) {
					t.Fatal("reloaded list differs from live list")
				}
			},
		})
	})
}
