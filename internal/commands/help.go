package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskpad help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskpad                                          List all tasks
  taskpad list [common flags] [--open]             List tasks (--open hides completed)
  taskpad add [common flags] [--desc <text>] <title...>
  taskpad done [common flags] <id>
  taskpad reopen [common flags] <id>
  taskpad edit [common flags] [--title <text>] [--desc <text>] <id>
  taskpad rm [common flags] <id>
  taskpad chat [common flags] <message...>
  taskpad register [common flags] <email> [password]
  taskpad login [common flags] <email> [password]
  taskpad logout [common flags]
  taskpad whoami [common flags]
  taskpad help
  taskpad version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TASKPAD_API_URL        Task service base URL (default http://localhost:8000)
  TASKPAD_ASSISTANT_URL  Assistant base URL (defaults to TASKPAD_API_URL)
  TASKPAD_TIMEOUT        Request timeout (default 10s)
`
