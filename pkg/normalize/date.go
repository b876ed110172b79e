package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts are tried in order. Slash dates are day-first, as exported
// by the registrar.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02/01/06",
	"2/1/2006",
	"2/1/06",
	"02-01-2006",
	"2006/01/02",
	"02-Jan-2006",
	"02-Jan-06",
}

// ParseDate parses an activity date. Numeric cells are read as Excel serial
// dates. Unparseable or missing values return nil.
func ParseDate(s string) *time.Time {
	s = Clean(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t)
		}
	}
	if strings.ContainsAny(s, "/-:") {
		return nil
	}
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil || serial <= 0 {
		return nil
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return nil
	}
	return dateOnly(t)
}

func dateOnly(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
