package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"taskpad/internal/credstore"
	"taskpad/internal/exitcode"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints the active session's identity.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Print the logged-in email" }
func (c *WhoamiCmd) Usage() string     { return "taskpad whoami [common flags]" }
func (c *WhoamiCmd) NeedsAuth() bool   { return true }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	sess, ok := app.Session.Session()
	if !ok {
		fmt.Fprintln(errOut, "error: not logged in")
		return exitcode.AuthError
	}

	fmt.Fprintln(out, sess.Identity)

	// The expiry peek is informational; the service decides validity.
	if exp, ok := credstore.TokenExpiry(sess.Credential); ok && !app.Config.Quiet {
		fmt.Fprintf(out, "credential expires %s\n", exp.UTC().Format(time.RFC3339))
	}
	return exitcode.Success
}
