package metadata

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column header aliases, matched after lowercasing and stripping
// whitespace/underscores.
var (
	idAliases      = map[string]bool{"eventid": true, "id": true}
	nameAliases    = map[string]bool{"eventname": true, "name": true}
	typeAliases    = map[string]bool{"eventtype": true, "type": true, "eventcategory": true, "category": true}
	countryAliases = map[string]bool{"country": true, "hostcountry": true, "nation": true}
)

var headerNormRe = regexp.MustCompile(`[\s_]+`)

// XLSXSource is the spreadsheet-backed event metadata mapping
// (EventId -> EventType/Country, optionally EventName).
type XLSXSource struct {
	events map[string]EventInfo
}

// LoadXLSX reads the mapping from the first sheet of an xlsx file. The file
// must have an EventId column; rows with an empty id are skipped. Any
// structural problem is reported as ErrUnusable so strict deployments can
// abort with the right exit code.
func LoadXLSX(path string) (*XLSXSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrUnusable, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", ErrUnusable, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %v", ErrUnusable, sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s is empty", ErrUnusable, path)
	}

	idCol, nameCol, typeCol, countryCol := -1, -1, -1, -1
	for i, col := range rows[0] {
		switch norm := normalizeHeader(col); {
		case idAliases[norm]:
			idCol = i
		case nameAliases[norm]:
			nameCol = i
		case typeAliases[norm]:
			typeCol = i
		case countryAliases[norm]:
			countryCol = i
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("%w: %s has no EventId column", ErrUnusable, path)
	}

	events := make(map[string]EventInfo)
	for _, row := range rows[1:] {
		eid := coerceEventID(cell(row, idCol))
		if eid == "" {
			continue
		}
		events[eid] = EventInfo{
			EventName: strings.TrimSpace(cell(row, nameCol)),
			EventType: strings.TrimSpace(cell(row, typeCol)),
			Country:   strings.TrimSpace(cell(row, countryCol)),
		}
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no valid rows in %s", ErrUnusable, path)
	}

	return &XLSXSource{events: events}, nil
}

func (s *XLSXSource) Lookup(eventID string) (EventInfo, bool) {
	info, ok := s.events[eventID]
	return info, ok
}

// Len returns the number of mapped events.
func (s *XLSXSource) Len() int {
	return len(s.events)
}

func normalizeHeader(s string) string {
	return headerNormRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// coerceEventID normalizes ids that spreadsheet tools store as floating
// values ("20540.0" -> "20540").
func coerceEventID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}
