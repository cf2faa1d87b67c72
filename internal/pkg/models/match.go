package models

// Side is one participant of a match: a player or pair plus the nation
// field as reported by the backend (possibly a multi-entry like "IND/SGP").
type Side struct {
	Name   string `json:"name"`
	Nation string `json:"nation"`
}

// Match is the canonical, backend-independent form of one completed match.
// OverallScore, GameScores and WinnerName are always expressed from the home
// side's perspective; nation-relative flipping happens at formatting time and
// never mutates the match itself.
type Match struct {
	SubEventName string `json:"sub_event_name"`
	Round        string `json:"round"`
	Home         Side   `json:"home"`
	Away         Side   `json:"away"`
	OverallScore string `json:"overall_score"`
	GameScores   string `json:"game_scores"`
	WinnerName   string `json:"winner_name"`
}

// EventHeader is the display header for one event block, resolved
// independently of match content.
type EventHeader struct {
	DisplayText string `json:"display_text"`
}
