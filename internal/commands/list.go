package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/output"
	"todos/internal/storage"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles `todos` (no args), `todos list --list <list-name>` and the
// positional form `todos list <list-name>`.
type ListCmd struct {
	listName string
	pending  bool
}

// SetListName sets the list name (for testing).
func (c *ListCmd) SetListName(name string) {
	c.listName = name
}

// SetPending hides completed tasks (for testing).
func (c *ListCmd) SetPending(pending bool) {
	c.pending = pending
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todos list [--list <list-name>] [--pending]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.BoolVar(&c.pending, "pending", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, kv storage.Store, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(c.listName)
	if name == "" {
		words, err := c.positionalName(args)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		name = words
	} else if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	l, code := openList(ctx, cfg, kv, name, errOut)
	if code != exitcode.Success {
		return code
	}

	// A named list prints with a header, even if empty
	if name != "" {
		output.FormatListHeader(out, l.Key(), l.Key() == cfg.Key)
	}

	printed := 0
	for i, t := range l.Tasks() {
		if c.pending && t.Completed {
			continue
		}
		// Numbers stay positional so they can be passed to done and rm
		output.FormatTask(out, i+1, t)
		printed++
	}

	if printed == 0 && name == "" && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}

// positionalName joins the words of `todos list <list-name>`. Flag parsing
// stops at the first word, so a trailing --pending is picked up here.
func (c *ListCmd) positionalName(args []string) (string, error) {
	var words []string
	for _, arg := range args {
		switch {
		case arg == "--pending" || arg == "-pending":
			c.pending = true
		case strings.HasPrefix(arg, "-"):
			return "", fmt.Errorf("unknown flag: %s", arg)
		default:
			words = append(words, arg)
		}
	}
	return strings.TrimSpace(strings.Join(words, " ")), nil
}
