// Package assistant implements the bridge to the conversational
// service. The bridge is deliberately thin: text in, text out. Any task
// changes the assistant makes server-side stay invisible until the task
// store's next fetch; there is no notification channel.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"taskpad/internal/service"
)

// DefaultTimeout bounds each exchange. Assistant replies involve a model
// round trip, so this is looser than the task API timeout.
const DefaultTimeout = 60 * time.Second

// Client posts chat messages to the conversational endpoint.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// New creates a client for the assistant at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Send implements service.Assistant. The identity addresses the chat
// endpoint and is escaped for the URL path.
func (c *Client) Send(ctx context.Context, identity, text string) (string, error) {
	payload, err := json.Marshal(struct {
		Message string `json:"message"`
	}{Message: text})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/%s/chat", c.baseURL, url.PathEscape(identity))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("assistant request failed", "identity", identity, "err", err)
		return "", &service.RequestError{Message: "assistant service unreachable"}
	}
	defer res.Body.Close()

	c.logger.Debug("assistant request", "identity", identity, "status", res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &service.RequestError{
			Status:  res.StatusCode,
			Message: fmt.Sprintf("assistant request failed with status %d", res.StatusCode),
		}
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", &service.RequestError{Status: res.StatusCode, Message: "invalid response from assistant"}
	}
	return out.Response, nil
}
