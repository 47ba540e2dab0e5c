// Package taskapi implements the service contract against the task
// service's REST API.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"taskpad/internal/service"
)

// DefaultTimeout bounds each request round trip unless the caller
// configures another value.
const DefaultTimeout = 10 * time.Second

// Client implements service.Service over HTTP. Auth endpoints go out on
// a plain client; task endpoints carry the bearer credential obtained
// from the injected CredentialSource on every call, so a login that
// happens after construction is picked up without rebuilding the client.
type Client struct {
	baseURL string
	timeout time.Duration
	base    *http.Client
	authed  *http.Client
	logger  *slog.Logger
}

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration, creds service.CredentialSource, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
		base:    &http.Client{Timeout: timeout},
		authed: &http.Client{
			Timeout: timeout,
			Transport: &oauth2.Transport{
				Source: credentialTokenSource{creds},
			},
		},
		logger: logger,
	}
}

// credentialTokenSource adapts a CredentialSource to oauth2.TokenSource
// so oauth2.Transport attaches the Authorization header.
type credentialTokenSource struct {
	creds service.CredentialSource
}

func (s credentialTokenSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{
		AccessToken: s.creds.Credential(),
		TokenType:   "Bearer",
	}, nil
}

// Authenticate implements service.Authenticator.
func (c *Client) Authenticate(ctx context.Context, identity, secret string) (string, error) {
	in := credentialsRequest{Email: identity, Password: secret}
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.do(ctx, c.base, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// CreateAccount implements service.Authenticator.
func (c *Client) CreateAccount(ctx context.Context, identity, secret string) error {
	in := credentialsRequest{Email: identity, Password: secret}
	return c.do(ctx, c.base, http.MethodPost, "/api/auth/register", in, nil)
}

// ListTasks implements service.TaskService.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, c.authed, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask implements service.TaskService.
func (c *Client) CreateTask(ctx context.Context, title, description string) (service.Task, error) {
	in := struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}{Title: title, Description: description}

	var task service.Task
	if err := c.do(ctx, c.authed, http.MethodPost, "/api/tasks", in, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// PatchTask implements service.TaskService. Only the patch's set fields
// are sent; the service echoes the full task it now stores.
func (c *Client) PatchTask(ctx context.Context, id int64, patch service.TaskPatch) (service.Task, error) {
	var task service.Task
	path := fmt.Sprintf("/api/tasks/%d", id)
	if err := c.do(ctx, c.authed, http.MethodPatch, path, patch, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// RemoveTask implements service.TaskService.
func (c *Client) RemoveTask(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/tasks/%d", id)
	return c.do(ctx, c.authed, http.MethodDelete, path, nil, nil)
}

// credentialsRequest is the body for both auth endpoints.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// do performs one JSON request/response exchange. Every failure comes
// back as a *service.RequestError with a message fit for the user.
func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := hc.Do(req)
	if err != nil {
		c.logger.Debug("taskapi request failed", "method", method, "path", path, "err", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return &service.RequestError{Message: "request timed out"}
		}
		return &service.RequestError{Message: fmt.Sprintf("service unreachable: %v", err)}
	}
	defer res.Body.Close()

	c.logger.Debug("taskapi request", "method", method, "path", path, "status", res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &service.RequestError{Status: res.StatusCode, Message: errorMessage(res)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &service.RequestError{Status: res.StatusCode, Message: "invalid response from service"}
	}
	return nil
}

// errorMessage extracts the service's error payload. The service reports
// failures as {"detail": "..."}; the detail passes through untouched so
// the user sees exactly what the service said.
func errorMessage(res *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Detail) != "" {
		return payload.Detail
	}
	return fmt.Sprintf("request failed with status %d", res.StatusCode)
}
