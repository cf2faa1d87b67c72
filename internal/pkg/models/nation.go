package models

import (
	"regexp"
	"strings"
)

// Nation fields can hold several codes delimited by slash, space, comma or
// hyphen, e.g. "IND/SGP" for a mixed pair.
var nationDelimRe = regexp.MustCompile(`[/\s,\-]+`)

// HasNation reports whether field contains code as a distinct token.
// Token-exact matching is required: "INDO" must not match "IND".
func HasNation(field, code string) bool {
	field = strings.TrimSpace(field)
	code = strings.ToUpper(strings.TrimSpace(code))
	if field == "" || code == "" {
		return false
	}
	for _, tok := range nationDelimRe.Split(strings.ToUpper(field), -1) {
		if tok == code {
			return true
		}
	}
	return false
}
