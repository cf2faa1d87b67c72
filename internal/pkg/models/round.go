package models

import (
	"regexp"
	"strings"
)

var (
	semifinalRe    = regexp.MustCompile(`\bsemi[-\s]?finals?\b`)
	quarterfinalRe = regexp.MustCompile(`\bquarter[-\s]?finals?\b`)
	finalRe        = regexp.MustCompile(`\bfinal\b`)
	roundOfRe      = regexp.MustCompile(`\bround\s+of\s+(\d{1,3})\b`)
	roundTokenRe   = regexp.MustCompile(`(?i)\bR\s*(\d{1,3})\b`)
	shortLabelRe   = regexp.MustCompile(`\b(QF|SF|F)\b`)
)

// ClassifyRound maps a free-text round description to a short canonical
// label: QF, SF, F or R<n>. Descriptions may contain overlapping hints
// ("Round of 16 - Quarterfinal"), so the more specific phrases are checked
// first. Unclassifiable input yields "".
func ClassifyRound(desc string) string {
	t := strings.TrimSpace(desc)
	if t == "" {
		return ""
	}
	tl := strings.ToLower(t)

	switch {
	case semifinalRe.MatchString(tl):
		return "SF"
	case quarterfinalRe.MatchString(tl):
		return "QF"
	case finalRe.MatchString(tl):
		return "F"
	}
	if m := roundOfRe.FindStringSubmatch(tl); m != nil {
		return "R" + m[1]
	}
	if m := roundTokenRe.FindStringSubmatch(t); m != nil {
		return "R" + m[1]
	}
	if m := shortLabelRe.FindStringSubmatch(strings.ToUpper(t)); m != nil {
		return m[1]
	}
	return ""
}
