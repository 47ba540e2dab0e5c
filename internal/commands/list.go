package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/exitcode"
	"taskpad/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. Runs for `taskpad` with no args
// too. Each invocation is a full refresh of the task store.
type ListCmd struct {
	open bool
}

// SetOpenOnly filters out completed tasks (for testing).
func (c *ListCmd) SetOpenOnly(open bool) {
	c.open = open
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskpad list [common flags] [--open]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.open, "open", false, "")
}

func (c *ListCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	app.Tasks.FetchAll(ctx)
	if msg := app.Tasks.Err(); msg != "" {
		fmt.Fprintf(errOut, "error: %s\n", msg)
		return exitcode.BackendError
	}

	shown := 0
	for _, task := range app.Tasks.Tasks() {
		if c.open && task.IsCompleted {
			continue
		}
		output.FormatTask(out, task)
		shown++
	}

	if shown == 0 && !app.Config.Quiet {
		fmt.Fprintln(out, "no tasks")
	}
	return exitcode.Success
}
