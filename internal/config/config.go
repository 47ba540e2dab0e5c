// Package config handles the XDG configuration directory and the
// remote service endpoint settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppName is the application directory name.
const AppName = "taskpad"

// Endpoints is the remote collaborator configuration, read from the
// environment.
type Endpoints struct {
	// APIURL is the base URL of the task/auth service.
	APIURL string `env:"TASKPAD_API_URL" envDefault:"http://localhost:8000"`

	// AssistantURL is the base URL of the conversational service.
	// Empty means the API URL serves the assistant too.
	AssistantURL string `env:"TASKPAD_ASSISTANT_URL"`

	// Timeout bounds each task/auth request round trip.
	Timeout time.Duration `env:"TASKPAD_TIMEOUT" envDefault:"10s"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Quiet suppresses informational output.
	Quiet bool

	// Debug enables debug logging.
	Debug bool

	// Endpoints locates the remote services.
	Endpoints Endpoints
}

// New creates a Config with the default or specified config directory
// and endpoint settings parsed from the environment.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	var eps Endpoints
	if err := env.Parse(&eps); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if eps.AssistantURL == "" {
		eps.AssistantURL = eps.APIURL
	}

	return &Config{Dir: dir, Endpoints: eps}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
