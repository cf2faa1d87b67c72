// Package metadata resolves per-event display metadata (name, type, host
// country) from a spreadsheet mapping with an API fallback tier.
package metadata

import "errors"

// ErrUnusable marks a required metadata source that is missing, empty or
// malformed. In strict deployments it is fatal for the whole run.
var ErrUnusable = errors.New("metadata source unusable")

// EventInfo is what a metadata source knows about one event. Any field may
// be empty.
type EventInfo struct {
	EventName string
	EventType string
	Country   string
}

// Source maps event ids to display metadata.
type Source interface {
	Lookup(eventID string) (EventInfo, bool)
}
