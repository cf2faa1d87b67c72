package wtt

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// DiscoveryError reports a failure to resolve the list of latest completed
// event ids. It aborts the whole run.
type DiscoveryError struct {
	Err error
}

func (e *DiscoveryError) Error() string {
	return "event discovery failed: " + e.Err.Error()
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

type appSettingResponse struct {
	Value string `json:"value"`
}

// DiscoverLatestEventIDs fetches the "completed results" appsetting and
// extracts event ids from its comma-separated value. Tokens are reduced to
// their digits, empties dropped and duplicates removed keeping first
// occurrence. An empty result means no completed events, not an error.
func (c *Client) DiscoverLatestEventIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.WTT.DiscoveryTimeout)
	defer cancel()

	// Cache-busting timestamp, matching what the website itself sends.
	query := url.Values{}
	query.Set("qc", time.Now().UTC().Format("2006-01-02T15:04:05.000Z"))

	var resp appSettingResponse
	if err := c.getJSON(ctx, c.config.WTT.AppSettingURL, query, false, &resp); err != nil {
		return nil, &DiscoveryError{Err: err}
	}

	seen := make(map[string]bool)
	var ids []string
	for _, part := range strings.Split(resp.Value, ",") {
		eid := digitsOnly(part)
		if eid != "" && !seen[eid] {
			seen[eid] = true
			ids = append(ids, eid)
		}
	}
	return ids, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
