package wtt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/wttnotify/wttnotify/internal/pkg/config"
)

// Client talks to the WTT web backend: the appsetting (discovery) endpoint,
// the static snapshot store and the live results API.
type Client struct {
	client *http.Client
	config *config.Config
}

func NewClient(config *config.Config) *Client {
	return &Client{
		client: &http.Client{
			Timeout: config.WTT.FetchTimeout,
		},
		config: config,
	}
}

// StatusError is returned for non-2xx responses so callers can tell an
// expected 404 (snapshot not published for this page size) from other
// failures.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

func (c *Client) getJSON(ctx context.Context, rawURL string, query url.Values, noCache bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", c.config.WTT.UserAgent)
	for key, value := range c.config.WTT.Headers {
		req.Header.Set(key, value)
	}
	if noCache {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, URL: req.URL.String()}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
