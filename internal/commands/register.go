package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/exitcode"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command. Registration never logs
// the user in; a follow-up login is required.
type RegisterCmd struct{}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string     { return "taskpad register <email> [password]" }
func (c *RegisterCmd) NeedsAuth() bool   { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RegisterCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	email, password, code := credentialArgs(app, args, errOut)
	if code != exitcode.Success {
		return code
	}

	if !app.Session.Register(ctx, email, password) {
		fmt.Fprintf(errOut, "error: %s\n", app.Session.Err())
		return exitcode.AuthError
	}

	if !app.Config.Quiet {
		fmt.Fprintln(out, "ok (run: taskpad login)")
	}
	return exitcode.Success
}
