package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/storage"
	"todos/internal/tasklist"
	"todos/internal/tui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the ui command: the interactive terminal view.
type UICmd struct {
	listName string

	isTerminal func(fd int) bool
	run        func(ctx context.Context, m tui.Model, in io.Reader, out io.Writer) error
}

// SetListName sets the list name (for testing).
func (c *UICmd) SetListName(name string) {
	c.listName = name
}

// SetTerminalCheck replaces the terminal check (for testing).
func (c *UICmd) SetTerminalCheck(fn func(fd int) bool) {
	c.isTerminal = fn
}

// SetRunner replaces the program runner (for testing).
func (c *UICmd) SetRunner(fn func(ctx context.Context, m tui.Model, in io.Reader, out io.Writer) error) {
	c.run = fn
}

func (c *UICmd) Name() string      { return "ui" }
func (c *UICmd) Aliases() []string { return nil }
func (c *UICmd) Synopsis() string  { return "Interactive view" }
func (c *UICmd) Usage() string     { return "todos ui [--list <list-name>]" }
func (c *UICmd) NeedsStore() bool  { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, kv storage.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	stdin := os.Stdin
	isTerminal := c.isTerminal
	if isTerminal == nil {
		isTerminal = term.IsTerminal
	}
	if !isTerminal(int(stdin.Fd())) {
		fmt.Fprintln(errOut, "error: ui requires a terminal")
		return exitcode.UserError
	}

	screen := tui.NewScreen()
	l, code := openList(ctx, cfg, kv, c.listName, errOut, tasklist.WithView(screen))
	if code != exitcode.Success {
		return code
	}

	run := c.run
	if run == nil {
		run = tui.Run
	}
	if err := run(ctx, tui.New(ctx, l, screen), stdin, out); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.TerminalError
	}
	return exitcode.Success
}
