package cli

import (
	"context"
	"log/slog"
	"os"

	"taskpad/internal/backend/assistant"
	"taskpad/internal/backend/taskapi"
	"taskpad/internal/commands"
	"taskpad/internal/config"
	"taskpad/internal/credstore"
	"taskpad/internal/store"
)

// NewAppFactory returns the production factory: HTTP backends against
// the configured endpoints and a file-backed credential store in the
// config directory. The task client reads its bearer credential from
// the credential store, which the session store keeps in lockstep with
// the in-memory session.
func NewAppFactory() AppFactory {
	return func(ctx context.Context, cfg *config.Config) (*commands.App, error) {
		logger := slog.New(slog.DiscardHandler)
		if cfg.Debug {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		}

		creds := credstore.NewFile(cfg.Dir)
		api := taskapi.New(cfg.Endpoints.APIURL, cfg.Endpoints.Timeout, creds, logger)

		return &commands.App{
			Config:    cfg,
			Session:   store.NewSessionStore(api, creds),
			Tasks:     store.NewTaskStore(api),
			Assistant: assistant.New(cfg.Endpoints.AssistantURL, 0, logger),
		}, nil
	}
}
