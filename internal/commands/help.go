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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todos help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, kv storage.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todos                                              List tasks in the default list
  todos list [common flags] [--list <list-name>] [--pending]
  todos add [common flags] [--list <list-name>] <text...>
  todos done [common flags] [--list <list-name>] <n>...   Toggle completed (n or n-m)
  todos rm [common flags] [--list <list-name>] <n>...
  todos export [common flags] [--list <list-name>]
  todos lists [common flags]
  todos createlist [common flags] <list-name>
  todos rmlist [common flags] [--force] <list-name>
  todos ui [common flags] [--list <list-name>]
  todos help
  todos version

Aliases: create=add, toggle=done, delete=rm, ls=list, addlist=createlist

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
