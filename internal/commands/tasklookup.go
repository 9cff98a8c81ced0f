package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/storage"
	"todos/internal/task"
	"todos/internal/tasklist"
)

// errListNotFound is returned when a named list has no record in the store.
var errListNotFound = errors.New("list not found")

// resolveKey maps a --list value to a storage key. The default list always
// resolves; a named list must already exist.
func resolveKey(ctx context.Context, cfg *config.Config, kv storage.Store, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == cfg.Key {
		return cfg.Key, nil
	}
	if _, err := kv.Get(ctx, name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", errListNotFound, name)
		}
		return "", err
	}
	return name, nil
}

// listOptions builds the task list options shared by every command.
func listOptions(cfg *config.Config, key string) []tasklist.Option {
	policy, err := tasklist.ParseCorruptPolicy(cfg.OnCorrupt)
	if err != nil {
		policy = tasklist.CorruptReset
	}
	return []tasklist.Option{
		tasklist.WithKey(key),
		tasklist.WithLogger(cfg.Logger),
		tasklist.WithCorruptPolicy(policy),
	}
}

// openList resolves name and loads its task list. On failure the error has
// been reported and the returned code is non-zero.
func openList(ctx context.Context, cfg *config.Config, kv storage.Store, name string, errOut io.Writer, opts ...tasklist.Option) (*tasklist.List, int) {
	key, err := resolveKey(ctx, cfg, kv, name)
	if err != nil {
		return nil, reportError(errOut, err)
	}

	l := tasklist.New(kv, append(listOptions(cfg, key), opts...)...)
	if err := l.Load(ctx); err != nil {
		return nil, reportError(errOut, err)
	}
	return l, exitcode.Success
}

// resolveRefs maps 1-based task numbers to tasks before anything is mutated,
// so positions refer to the list as it was printed.
func resolveRefs(l *tasklist.List, refs []int) ([]task.Task, error) {
	tasks := make([]task.Task, 0, len(refs))
	for _, n := range refs {
		t, err := l.At(n)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// reportError prints err in the CLI's format and returns its exit code.
func reportError(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, task.ErrEmptyText),
		errors.Is(err, tasklist.ErrOutOfRange),
		errors.Is(err, tasklist.ErrTaskNotFound),
		errors.Is(err, errListNotFound),
		errors.Is(err, ErrTaskRefRequired):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, tasklist.ErrCorruptRecord):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	default:
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}
}
