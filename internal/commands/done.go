package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/exitcode"
	"taskpad/internal/service"
)

func init() {
	Register(&DoneCmd{})
	Register(&ReopenCmd{})
}

// DoneCmd marks a task completed.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "taskpad done [common flags] <id>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	return runSetCompleted(ctx, app, args, true, out, errOut)
}

// ReopenCmd marks a completed task open again.
type ReopenCmd struct{}

func (c *ReopenCmd) Name() string      { return "reopen" }
func (c *ReopenCmd) Aliases() []string { return []string{"undone"} }
func (c *ReopenCmd) Synopsis() string  { return "Mark a task not completed" }
func (c *ReopenCmd) Usage() string     { return "taskpad reopen [common flags] <id>" }
func (c *ReopenCmd) NeedsAuth() bool   { return true }

func (c *ReopenCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ReopenCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	return runSetCompleted(ctx, app, args, false, out, errOut)
}

// runSetCompleted is the shared implementation for done and reopen.
func runSetCompleted(ctx context.Context, app *App, args []string, completed bool, out, errOut io.Writer) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	patch := service.TaskPatch{IsCompleted: &completed}
	if !app.Tasks.Update(ctx, id, patch) {
		fmt.Fprintf(errOut, "error: %s\n", app.Tasks.Err())
		return exitcode.BackendError
	}

	if !app.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
