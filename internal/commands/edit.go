package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskpad/internal/exitcode"
	"taskpad/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd changes a task's title and/or description. An empty flag
// value counts as unset: clearing a description from the command line
// is not supported, the service keeps the old field.
type EditCmd struct {
	title       string
	description string
}

// SetFields sets the patch fields (for testing).
func (c *EditCmd) SetFields(title, description string) {
	c.title = title
	c.description = description
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Change a task's title or description" }
func (c *EditCmd) Usage() string {
	return "taskpad edit [common flags] [--title <text>] [--desc <text>] <id>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.description, "desc", "", "")
}

func (c *EditCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	patch := service.TaskPatch{}
	if title := strings.TrimSpace(c.title); title != "" {
		patch.Title = &title
	}
	if c.description != "" {
		patch.Description = &c.description
	}
	if patch.IsZero() {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	if !app.Tasks.Update(ctx, id, patch) {
		fmt.Fprintf(errOut, "error: %s\n", app.Tasks.Err())
		return exitcode.BackendError
	}

	if !app.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
