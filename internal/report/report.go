// Package report renders normalized matches into the nation-relative text
// message that gets delivered.
package report

import (
	"fmt"
	"strings"

	"github.com/wttnotify/wttnotify/internal/pkg/models"
)

// FilterNation keeps matches where either side's nation field contains the
// target code as a distinct token.
func FilterNation(matches []models.Match, nation string) []models.Match {
	var out []models.Match
	for _, m := range matches {
		if models.HasNation(m.Home.Nation, nation) || models.HasNation(m.Away.Nation, nation) {
			out = append(out, m)
		}
	}
	return out
}

// BuildEventBlock renders one event: the header line, then one
// sub-event/round line and one narrative line per qualifying match. The
// narrative names the target-nation participant and shows scores from the
// winner's side, flipping the stored home-perspective values when the
// participant lost.
func BuildEventBlock(header models.EventHeader, matches []models.Match, nation, noMatchNotice string) string {
	lines := []string{header.DisplayText}

	national := FilterNation(matches, nation)
	if len(national) == 0 {
		if noMatchNotice == "" {
			noMatchNotice = fmt.Sprintf("(No %s matches found)", nation)
		}
		lines = append(lines, noMatchNotice)
		return strings.Join(lines, "\n")
	}

	for _, m := range national {
		lines = append(lines, strings.TrimSpace(m.SubEventName+" "+m.Round))
		lines = append(lines, narrativeLine(m, nation))
		lines = append(lines, "")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), " \n")
}

func narrativeLine(m models.Match, nation string) string {
	participant, opponent := m.Home, m.Away
	if !models.HasNation(m.Home.Nation, nation) {
		participant, opponent = m.Away, m.Home
	}

	opponentWith := fmt.Sprintf("(%s)", opponent.Nation)
	if opponent.Name != "" {
		opponentWith = fmt.Sprintf("%s (%s)", opponent.Name, opponent.Nation)
	}

	overall, games := m.OverallScore, m.GameScores
	var phrase string
	switch {
	case m.WinnerName != "" && m.WinnerName == participant.Name:
		phrase = "defeated " + opponentWith + " by"
	case m.WinnerName != "" && m.WinnerName == opponent.Name:
		phrase = "lost to " + opponentWith + " by"
		overall = models.FlipScore(overall)
		games = models.FlipGameScores(games)
	default:
		phrase = "vs " + opponentWith
	}

	return fmt.Sprintf("%s %s (%s) (%s)", participant.Name, phrase, overall, games)
}

// Assemble joins per-event blocks with a fixed-width divider line and trims
// trailing whitespace.
func Assemble(blocks []string, dividerWidth int) string {
	if dividerWidth <= 0 {
		dividerWidth = 60
	}
	divider := strings.Repeat("-", dividerWidth)
	return strings.TrimSpace(strings.Join(blocks, "\n"+divider+"\n"))
}
