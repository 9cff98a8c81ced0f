// Package tasklist keeps an ordered task list, its persisted record and its
// rendered view consistent.
//
// The in-memory list is the source of truth. Every mutation is applied to it,
// written to storage as a full replacement of the record, and only then
// projected onto the View. A failed write rolls the mutation back.
package tasklist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"todos/internal/storage"
	"todos/internal/task"
)

// EmptyTextWarning is shown when a blank task is submitted.
const EmptyTextWarning = "Please enter a task!"

var (
	// ErrTaskNotFound is returned by Toggle and Delete for an id that is not
	// in the list. Nothing is changed or written.
	ErrTaskNotFound = errors.New("task not found")

	// ErrCorruptRecord is returned by Load under CorruptFail.
	ErrCorruptRecord = errors.New("corrupt task record")

	// ErrOutOfRange is returned by At for a position outside the list.
	ErrOutOfRange = errors.New("task number out of range")
)

// CorruptPolicy decides what Load does with a record it cannot decode.
type CorruptPolicy int

const (
	// CorruptReset loads an empty list and logs a warning. The stored value
	// is left alone until the next mutation overwrites it.
	CorruptReset CorruptPolicy = iota

	// CorruptFail makes Load return ErrCorruptRecord.
	CorruptFail
)

// ParseCorruptPolicy maps a config value ("reset" or "fail") to a policy.
func ParseCorruptPolicy(s string) (CorruptPolicy, error) {
	switch s {
	case "", "reset":
		return CorruptReset, nil
	case "fail":
		return CorruptFail, nil
	default:
		return 0, fmt.Errorf("unknown corrupt policy: %s", s)
	}
}

// List is the task list store.
type List struct {
	kv     storage.Store
	key    string
	view   View
	logger *slog.Logger
	policy CorruptPolicy
	newID  func() string

	tasks []task.Task
}

// Option configures a List.
type Option func(*List)

// WithView sets the rendering surface. Defaults to NopView.
func WithView(v View) Option {
	return func(l *List) { l.view = v }
}

// WithKey sets the storage key. Defaults to "todos".
func WithKey(key string) Option {
	return func(l *List) { l.key = key }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *List) { l.logger = logger }
}

// WithCorruptPolicy sets the policy for undecodable records.
func WithCorruptPolicy(p CorruptPolicy) Option {
	return func(l *List) { l.policy = p }
}

// WithIDGenerator replaces the UUID generator, for deterministic tests.
func WithIDGenerator(fn func() string) Option {
	return func(l *List) { l.newID = fn }
}

// New creates an empty List persisting to kv. Call Load to read the
// stored record.
func New(kv storage.Store, opts ...Option) *List {
	l := &List{
		kv:     kv,
		key:    "todos",
		view:   NopView{},
		logger: slog.New(slog.DiscardHandler),
		policy: CorruptReset,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Key returns the storage key the list persists to.
func (l *List) Key() string {
	return l.key
}

// Load replaces the list with the stored record and rebuilds the view.
// A missing record is an empty list. Load never writes to storage.
func (l *List) Load(ctx context.Context) error {
	entries, err := l.readRecord(ctx)
	if err != nil {
		return err
	}

	tasks := make([]task.Task, 0, len(entries))
	for i, e := range entries {
		t, err := task.New(l.newID(), e.Text)
		if err != nil {
			l.logger.Warn("skipping blank task in record", "key", l.key, "index", i)
			continue
		}
		t.Completed = e.Completed
		tasks = append(tasks, t)
	}

	l.tasks = tasks
	l.view.Clear()
	for _, t := range l.tasks {
		l.view.AppendRow(t)
	}
	l.logger.Debug("task list loaded", "key", l.key, "tasks", len(l.tasks))
	return nil
}

func (l *List) readRecord(ctx context.Context) ([]task.Entry, error) {
	record, err := l.kv.Get(ctx, l.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task list: %w", err)
	}

	entries, err := task.Decode(record)
	if err != nil {
		if l.policy == CorruptFail {
			return nil, fmt.Errorf("%w: key %s: %v", ErrCorruptRecord, l.key, err)
		}
		l.logger.Warn("ignoring corrupt task record", "key", l.key, "error", err)
		return nil, nil
	}
	return entries, nil
}

// Add appends a new open task and persists the list.
// Blank text warns through the view and returns task.ErrEmptyText without
// changing or writing anything.
func (l *List) Add(ctx context.Context, text string) (task.Task, error) {
	t, err := task.New(l.newID(), text)
	if err != nil {
		l.view.Warn(EmptyTextWarning)
		return task.Task{}, err
	}

	l.tasks = append(l.tasks, t)
	if err := l.Persist(ctx); err != nil {
		l.tasks = l.tasks[:len(l.tasks)-1]
		return task.Task{}, err
	}

	l.view.AppendRow(t)
	l.view.ClearInput()
	l.logger.Debug("task added", "key", l.key, "id", t.ID)
	return t, nil
}

// Toggle flips the completed flag of the task with id and persists the list.
func (l *List) Toggle(ctx context.Context, id string) (task.Task, error) {
	i := l.index(id)
	if i < 0 {
		return task.Task{}, ErrTaskNotFound
	}

	l.tasks[i].Completed = !l.tasks[i].Completed
	if err := l.Persist(ctx); err != nil {
		l.tasks[i].Completed = !l.tasks[i].Completed
		return task.Task{}, err
	}

	t := l.tasks[i]
	l.view.MarkRow(t.ID, t.Completed)
	l.logger.Debug("task toggled", "key", l.key, "id", t.ID, "completed", t.Completed)
	return t, nil
}

// Delete removes the task with id and persists the list.
func (l *List) Delete(ctx context.Context, id string) (task.Task, error) {
	i := l.index(id)
	if i < 0 {
		return task.Task{}, ErrTaskNotFound
	}

	prev := l.tasks
	t := prev[i]
	next := make([]task.Task, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)

	l.tasks = next
	if err := l.Persist(ctx); err != nil {
		l.tasks = prev
		return task.Task{}, err
	}

	l.view.RemoveRow(t.ID)
	l.logger.Debug("task deleted", "key", l.key, "id", t.ID)
	return t, nil
}

// Persist overwrites the stored record with the whole list, top to bottom.
func (l *List) Persist(ctx context.Context) error {
	record, err := task.Encode(l.tasks)
	if err != nil {
		return err
	}
	if err := l.kv.Set(ctx, l.key, record); err != nil {
		return fmt.Errorf("persist task list: %w", err)
	}
	l.logger.Debug("task list persisted", "key", l.key, "tasks", len(l.tasks))
	return nil
}

// Tasks returns a copy of the list in order.
func (l *List) Tasks() []task.Task {
	out := make([]task.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// At returns the task at 1-based position n.
func (l *List) At(n int) (task.Task, error) {
	if n < 1 || n > len(l.tasks) {
		return task.Task{}, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return l.tasks[n-1], nil
}

// Get returns the task with id.
func (l *List) Get(id string) (task.Task, bool) {
	i := l.index(id)
	if i < 0 {
		return task.Task{}, false
	}
	return l.tasks[i], true
}

// HasOpen reports whether any task is not completed.
func (l *List) HasOpen() bool {
	for _, t := range l.tasks {
		if !t.Completed {
			return true
		}
	}
	return false
}

func (l *List) index(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
