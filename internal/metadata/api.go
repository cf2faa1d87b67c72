package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/wttnotify/wttnotify/internal/pkg/config"
)

// APISource queries the event-metadata endpoint by event id. It is the
// secondary header tier, used when the spreadsheet has no entry.
type APISource struct {
	client *http.Client
	config *config.Config
}

func NewAPISource(config *config.Config) *APISource {
	return &APISource{
		client: &http.Client{
			Timeout: config.WTT.FetchTimeout,
		},
		config: config,
	}
}

// Fetch looks the event up remotely. The response object may be nested
// under an "event" key and uses inconsistent field names across API
// versions, so fields are matched against a small alias set.
func (s *APISource) Fetch(ctx context.Context, eventID string) (EventInfo, error) {
	if s.config.WTT.MetadataAPIURL == "" {
		return EventInfo{}, fmt.Errorf("metadata API not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.WTT.MetadataAPIURL, nil)
	if err != nil {
		return EventInfo{}, fmt.Errorf("failed to create request: %w", err)
	}
	query := url.Values{}
	query.Set("EventId", eventID)
	req.URL.RawQuery = query.Encode()

	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", s.config.WTT.UserAgent)
	for key, value := range s.config.WTT.Headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return EventInfo{}, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return EventInfo{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return EventInfo{}, fmt.Errorf("failed to read body: %w", err)
	}

	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return EventInfo{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if nested, ok := obj["event"].(map[string]any); ok {
		obj = nested
	}

	info := EventInfo{
		EventName: stringField(obj, "eventName", "name", "EventName"),
		EventType: stringField(obj, "eventType", "type", "EventType"),
		Country:   stringField(obj, "country", "hostCountry", "Country", "HostCountry"),
	}
	if info == (EventInfo{}) {
		return EventInfo{}, fmt.Errorf("no usable metadata for event %s", eventID)
	}
	return info, nil
}

func stringField(obj map[string]any, aliases ...string) string {
	for _, alias := range aliases {
		if v, ok := obj[alias].(string); ok {
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		}
	}
	return ""
}
