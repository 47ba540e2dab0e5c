// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"taskpad/internal/config"
	"taskpad/internal/service"
	"taskpad/internal/store"
)

// App bundles the state commands operate on: configuration, the two
// stores, and the assistant bridge. The stores are the only path to the
// remote service; commands render from them and gate follow-up output
// on each operation's boolean result.
type App struct {
	Config    *config.Config
	Session   *store.SessionStore
	Tasks     *store.TaskStore
	Assistant service.Assistant

	// Stdin is where interactive prompts read from. The dispatcher
	// defaults it to os.Stdin; tests substitute a buffer.
	Stdin io.Reader
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth reports whether the command requires an active session.
	// The dispatcher rejects such commands up front when the restored
	// session is absent.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with positional arguments after flag
	// parsing. Returns an exit code.
	Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int
}
