package run

import (
	"strings"
	"time"

	"github.com/upbvirtual/enroller/pkg/constants"
	"github.com/upbvirtual/enroller/pkg/errors"
)

// sinceLayouts are accepted for the minimum activity date, two-digit year first.
var sinceLayouts = []string{constants.CLIDateFormat, "02/01/2006"}

// ParseSince parses the minimum activity date argument. Empty means no
// filter. Dates after today are rejected.
func ParseSince(s string, now time.Time) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var (
		d   time.Time
		err error
	)
	for _, layout := range sinceLayouts {
		if d, err = time.ParseInLocation(layout, s, time.UTC); err == nil {
			break
		}
	}
	if err != nil {
		return nil, errors.NewValidationError("date", s, "expected dd/mm/yy")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.After(today) {
		return nil, errors.NewValidationError("date", s, "date is in the future")
	}
	return &d, nil
}
