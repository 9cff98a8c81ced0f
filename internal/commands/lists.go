package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/output"
	"todos/internal/storage"
	"todos/internal/tasklist"
)

func init() {
	Register(&ListsCmd{})
}

// ListsCmd implements the lists command.
type ListsCmd struct{}

func (c *ListsCmd) Name() string      { return "lists" }
func (c *ListsCmd) Aliases() []string { return nil }
func (c *ListsCmd) Synopsis() string  { return "Print all lists" }
func (c *ListsCmd) Usage() string     { return "todos lists [common flags]" }
func (c *ListsCmd) NeedsStore() bool  { return true }

func (c *ListsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListsCmd) Run(ctx context.Context, cfg *config.Config, kv storage.Store, args []string, out, errOut io.Writer) int {
	keys, err := kv.Keys(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	// The default list is always shown, first
	names := []string{cfg.Key}
	for _, k := range keys {
		if k != cfg.Key {
			names = append(names, k)
		}
	}
	sort.Strings(names[1:])

	for _, name := range names {
		l := tasklist.New(kv, tasklist.WithKey(name), tasklist.WithCorruptPolicy(tasklist.CorruptFail))
		if err := l.Load(ctx); err != nil {
			if errors.Is(err, tasklist.ErrCorruptRecord) {
				fmt.Fprintf(out, "%s  (corrupt)\n", name)
				continue
			}
			return reportError(errOut, err)
		}

		open := 0
		for _, t := range l.Tasks() {
			if !t.Completed {
				open++
			}
		}
		output.FormatListName(out, name, name == cfg.Key, open, l.Len())
	}

	return exitcode.Success
}
