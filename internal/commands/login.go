package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskpad/internal/exitcode"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct{}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate and store the credential" }
func (c *LoginCmd) Usage() string     { return "taskpad login <email> [password]" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoginCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if app.Session.Authenticated() {
		if !app.Config.Quiet {
			fmt.Fprintln(out, "already logged in")
		}
		return exitcode.Success
	}

	email, password, code := credentialArgs(app, args, errOut)
	if code != exitcode.Success {
		return code
	}

	if !app.Session.Login(ctx, email, password) {
		fmt.Fprintf(errOut, "error: %s\n", app.Session.Err())
		return exitcode.AuthError
	}

	if !app.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// credentialArgs extracts email and password for login/register.
// The password comes from the second argument when given, otherwise
// from a prompt on stdin.
func credentialArgs(app *App, args []string, errOut io.Writer) (email, password string, code int) {
	if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(errOut, "error: email required")
		return "", "", exitcode.UserError
	}
	email = strings.TrimSpace(args[0])

	if len(args) >= 2 {
		password = args[1]
	} else {
		fmt.Fprint(errOut, "password: ")
		line, err := bufio.NewReader(app.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(errOut, "error: password required")
			return "", "", exitcode.UserError
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if password == "" {
		fmt.Fprintln(errOut, "error: password required")
		return "", "", exitcode.UserError
	}
	return email, password, exitcode.Success
}
