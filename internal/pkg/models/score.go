package models

import (
	"regexp"
	"strconv"
	"strings"
)

// Overall and per-game scores use the strict "<int><sep><int>" form with
// separator "-" or ":". Anything else is treated as opaque text.
var scorePairRe = regexp.MustCompile(`^\s*(\d+)\s*([-:])\s*(\d+)\s*$`)

// ParseScorePair parses a strict numeric score pair. ok is false for any
// other shape, including extra trailing text.
func ParseScorePair(s string) (home, away int, ok bool) {
	m := scorePairRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	home, err1 := strconv.Atoi(m[1])
	away, err2 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return home, away, true
}

// FlipScore swaps the two numbers of a score pair, preserving the separator
// so flipping twice restores the original token. Malformed input passes
// through unchanged.
func FlipScore(s string) string {
	m := scorePairRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return m[3] + m[2] + m[1]
}

// FlipGameScores flips each comma-separated game score of a per-game score
// list. Empty and malformed tokens pass through.
func FlipGameScores(gameScores string) string {
	if gameScores == "" {
		return ""
	}
	parts := strings.Split(gameScores, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, FlipScore(p))
	}
	return strings.Join(out, ",")
}
