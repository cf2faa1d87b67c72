package wtt

import (
	"encoding/json"
	"strings"

	"github.com/wttnotify/wttnotify/internal/pkg/models"
)

// NormalizeMatches converts a raw official-results payload into canonical
// matches. The payload is either a bare list of match entries or an object
// with a "matches" list; any other shape yields zero matches. A malformed
// individual entry degrades to an empty-field match instead of failing the
// whole batch.
func NormalizeMatches(payload json.RawMessage) []models.Match {
	entries := extractEntries(payload)
	if len(entries) == 0 {
		return nil
	}

	matches := make([]models.Match, 0, len(entries))
	for _, raw := range entries {
		matches = append(matches, normalizeEntry(raw))
	}
	return matches
}

func extractEntries(payload json.RawMessage) []json.RawMessage {
	if len(payload) == 0 {
		return nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(payload, &list); err == nil {
		return list
	}

	var wrapped officialResults
	if err := json.Unmarshal(payload, &wrapped); err == nil {
		return wrapped.Matches
	}
	return nil
}

func normalizeEntry(raw json.RawMessage) models.Match {
	var entry matchEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return models.Match{}
	}

	card := entry.MatchCard

	subEvent := card.SubEventName
	if subEvent == "" {
		subEvent = entry.SubEventType
	}

	match := models.Match{
		SubEventName: subEvent,
		Round:        models.ClassifyRound(card.SubEventDescription),
		OverallScore: firstNonEmpty(card.ResultOverallScores, card.OverallScores),
		GameScores:   firstNonEmpty(card.ResultsGameScores, card.GameScores),
	}

	for _, comp := range card.Competitors {
		side := models.Side{
			Name:   comp.CompetitorName,
			Nation: strings.TrimSpace(comp.CompetitorOrg),
		}
		switch comp.CompetitorType {
		case "H":
			match.Home = side
		case "A":
			match.Away = side
		}
	}

	if home, away, ok := models.ParseScorePair(match.OverallScore); ok {
		switch {
		case home > away:
			match.WinnerName = match.Home.Name
		case away > home:
			match.WinnerName = match.Away.Name
		}
	}

	return match
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
