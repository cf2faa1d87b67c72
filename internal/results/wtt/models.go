package wtt

import "encoding/json"

// Raw structures of the WTT official-results payload. Field names follow the
// backend exactly, including its misspelled "competitior" keys.

type officialResults struct {
	Matches []json.RawMessage `json:"matches"`
}

type matchEntry struct {
	SubEventType string    `json:"subEventType"`
	MatchCard    matchCard `json:"match_card"`
}

type matchCard struct {
	SubEventName        string       `json:"subEventName"`
	SubEventDescription string       `json:"subEventDescription"`
	Competitors         []competitor `json:"competitiors"`
	ResultOverallScores string       `json:"resultOverallScores"`
	ResultsGameScores   string       `json:"resultsGameScores"`
	// Legacy field names still seen in older snapshot files.
	OverallScores string `json:"overallScores"`
	GameScores    string `json:"gameScores"`
}

type competitor struct {
	CompetitorType string `json:"competitorType"`
	CompetitorName string `json:"competitiorName"`
	CompetitorOrg  string `json:"competitiorOrg"`
}
