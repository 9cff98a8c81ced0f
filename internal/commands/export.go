package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todos/internal/config"
	"todos/internal/exitcode"
	"todos/internal/storage"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd prints the persisted record of a list exactly as stored.
type ExportCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *ExportCmd) SetListName(name string) {
	c.listName = name
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Print the stored record" }
func (c *ExportCmd) Usage() string     { return "todos export [--list <list-name>]" }
func (c *ExportCmd) NeedsStore() bool  { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, kv storage.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	key, err := resolveKey(ctx, cfg, kv, c.listName)
	if err != nil {
		return reportError(errOut, err)
	}

	record, err := kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		record = "[]"
	} else if err != nil {
		return reportError(errOut, err)
	}

	fmt.Fprintln(out, record)
	return exitcode.Success
}
