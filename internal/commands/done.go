package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/storage"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. Completing a completed task reopens it.
type DoneCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *DoneCmd) SetListName(name string) {
	c.listName = name
}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task's completed flag" }
func (c *DoneCmd) Usage() string     { return "todos done [--list <list-name>] <n>..." }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, kv storage.Store, args []string, out, errOut io.Writer) int {
	l, code := openList(ctx, cfg, kv, c.listName, errOut)
	if code != exitcode.Success {
		return code
	}

	refs, err := ParseTaskRefs(args, l.Len())
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	targets, err := resolveRefs(l, refs)
	if err != nil {
		return reportError(errOut, err)
	}

	for _, t := range targets {
		if _, err := l.Toggle(ctx, t.ID); err != nil {
			return reportError(errOut, err)
		}
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
