package wtt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/wttnotify/wttnotify/internal/pkg/fallback"
)

// PayloadUnavailableError means every fallback tier and page size was
// exhausted for one event.
type PayloadUnavailableError struct {
	EventID string
	Err     error
}

func (e *PayloadUnavailableError) Error() string {
	return "no payload available for event " + e.EventID
}

func (e *PayloadUnavailableError) Unwrap() error {
	return e.Err
}

// ResolvePayload obtains the raw official-results payload for one event.
//
// The backend publishes pre-rendered snapshot files per (event, take) that
// are cheap to serve but eventually consistent: they may not exist for
// low-traffic events or very recent completions, and not for every page
// size. So the static tier is tried first across all configured takes
// (largest first, any failure skips to the next), then the live API the same
// way. First success wins.
func (c *Client) ResolvePayload(ctx context.Context, eventID string) (json.RawMessage, error) {
	takes := c.config.WTT.Takes

	steps := make([]fallback.Step[json.RawMessage], 0, 2*len(takes))
	for _, take := range takes {
		take := take
		steps = append(steps, fallback.Step[json.RawMessage]{
			Name: fmt.Sprintf("static take=%d", take),
			Run: func(ctx context.Context) (json.RawMessage, error) {
				return c.fetchStatic(ctx, eventID, take)
			},
		})
	}
	for _, take := range takes {
		take := take
		steps = append(steps, fallback.Step[json.RawMessage]{
			Name: fmt.Sprintf("live take=%d", take),
			Run: func(ctx context.Context) (json.RawMessage, error) {
				return c.fetchLive(ctx, eventID, take)
			},
		})
	}

	payload, err := fallback.First(ctx, steps)
	if err != nil {
		return nil, &PayloadUnavailableError{EventID: eventID, Err: err}
	}
	return payload, nil
}

func (c *Client) staticURL(eventID string, take int) string {
	return fmt.Sprintf("%s/%s/%s_take_%d_official_results.json", c.config.WTT.StaticRoot, eventID, eventID, take)
}

func (c *Client) fetchStatic(ctx context.Context, eventID string, take int) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.getJSON(ctx, c.staticURL(eventID, take), nil, true, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) fetchLive(ctx context.Context, eventID string, take int) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("EventId", eventID)
	query.Set("include_match_card", "true")
	query.Set("take", fmt.Sprintf("%d", take))
	query.Set("languageCode", "en")

	var payload json.RawMessage
	if err := c.getJSON(ctx, c.config.WTT.LiveAPIURL, query, false, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
