package metadata

import (
	"context"
	"fmt"
	"strings"

	"github.com/wttnotify/wttnotify/internal/pkg/fallback"
	"github.com/wttnotify/wttnotify/internal/pkg/models"
)

// PlaceholderHeader is the neutral header used in lenient mode when no
// metadata tier resolves. It deliberately carries no event id.
const PlaceholderHeader = "*Table Tennis Event*"

// HeaderResolver determines the display header for an event: spreadsheet
// tier first, then the metadata API, then a fixed placeholder. In strict
// mode an unresolvable event is an error instead of a placeholder.
type HeaderResolver struct {
	Source Source     // spreadsheet tier, may be nil
	API    *APISource // secondary tier, may be nil
	Strict bool
}

func (r *HeaderResolver) Resolve(ctx context.Context, eventID string) (models.EventHeader, error) {
	var steps []fallback.Step[models.EventHeader]

	if r.Source != nil {
		steps = append(steps, fallback.Step[models.EventHeader]{
			Name: "spreadsheet",
			Run: func(ctx context.Context) (models.EventHeader, error) {
				info, ok := r.Source.Lookup(eventID)
				if !ok {
					return models.EventHeader{}, fmt.Errorf("event %s not in mapping", eventID)
				}
				return headerFromInfo(eventID, info)
			},
		})
	}
	if r.API != nil {
		steps = append(steps, fallback.Step[models.EventHeader]{
			Name: "metadata API",
			Run: func(ctx context.Context) (models.EventHeader, error) {
				info, err := r.API.Fetch(ctx, eventID)
				if err != nil {
					return models.EventHeader{}, err
				}
				return headerFromInfo(eventID, info)
			},
		})
	}

	header, err := fallback.First(ctx, steps)
	if err != nil {
		if r.Strict {
			return models.EventHeader{}, fmt.Errorf("no header for event %s: %w", eventID, err)
		}
		return models.EventHeader{DisplayText: PlaceholderHeader}, nil
	}
	return header, nil
}

func headerFromInfo(eventID string, info EventInfo) (models.EventHeader, error) {
	if info.EventName != "" {
		return models.EventHeader{DisplayText: "*" + info.EventName + "*"}, nil
	}

	var parts []string
	for _, p := range []string{info.EventType, info.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return models.EventHeader{}, fmt.Errorf("event %s has empty metadata", eventID)
	}
	return models.EventHeader{DisplayText: "*" + strings.Join(parts, " | ") + "*"}, nil
}
