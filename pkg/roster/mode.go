package roster

import (
	"fmt"
	"strings"
)

// Mode is the process mode of a run.
type Mode string

const (
	// ModeEnroll creates/updates users and enrolls them (default).
	ModeEnroll Mode = "Matricular"
	// ModeUnenroll removes cancelled enrollments.
	ModeUnenroll Mode = "Desmatricular"
	// ModeCleanup removes enrollments deleted from the source list.
	ModeCleanup Mode = "Limpieza"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeEnroll, ModeUnenroll, ModeCleanup}

// ParseMode parses a mode name case-insensitively. Empty means ModeEnroll.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModeEnroll, nil
	}
	for _, m := range Modes {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown process mode %q (want one of %v)", s, Modes)
}
