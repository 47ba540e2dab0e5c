package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskpad/internal/exitcode"
)

func init() {
	Register(&ChatCmd{})
}

// ChatCmd sends a message to the assistant and prints the reply. The
// assistant may change tasks server-side; those changes only show up in
// the next list, which refetches.
type ChatCmd struct{}

func (c *ChatCmd) Name() string      { return "chat" }
func (c *ChatCmd) Aliases() []string { return []string{"ask"} }
func (c *ChatCmd) Synopsis() string  { return "Talk to the assistant" }
func (c *ChatCmd) Usage() string     { return "taskpad chat [common flags] <message...>" }
func (c *ChatCmd) NeedsAuth() bool   { return true }

func (c *ChatCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ChatCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		fmt.Fprintln(errOut, "error: message required")
		return exitcode.UserError
	}

	reply, err := app.Assistant.Send(ctx, app.Session.Identity(), message)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}

	fmt.Fprintln(out, reply)
	return exitcode.Success
}
