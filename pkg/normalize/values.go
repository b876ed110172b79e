package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/upbvirtual/enroller/pkg/constants"
)

// placeholders are the spellings spreadsheet exports use for an empty cell.
var placeholders = map[string]struct{}{
	"":     {},
	"nan":  {},
	"nat":  {},
	"none": {},
	"null": {},
	"<na>": {},
}

// IsMissing reports whether s is empty or a null placeholder.
func IsMissing(s string) bool {
	_, ok := placeholders[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// Clean trims s and maps null placeholders to "".
func Clean(s string) string {
	if IsMissing(s) {
		return ""
	}
	return strings.TrimSpace(s)
}

// Code coerces a key-like cell to its string form. Spreadsheet readers
// sometimes surface integer codes as floats ("12345.0"); those are reduced
// to their integer text.
func Code(s string) string {
	s = Clean(s)
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '.'); i > 0 && strings.Trim(s[i+1:], "0") == "" && isDigits(s[:i]) {
		return s[:i]
	}
	return s
}

// PadID left-pads a person identifier with zeros to the fixed LMS width.
// Identifiers already at or above the width pass through unchanged.
// A missing identifier stays empty so it can be rejected downstream.
func PadID(s string) string {
	s = Code(s)
	if s == "" {
		return ""
	}
	if n := constants.PersonIDWidth - len(s); n > 0 {
		return strings.Repeat(string(constants.PersonIDPad), n) + s
	}
	return s
}

// ValidID reports whether id can be used in a command: digits only and
// not all zeros.
func ValidID(id string) bool {
	if !isDigits(id) {
		return false
	}
	return strings.Trim(id, "0") != ""
}

var titleCaser = cases.Title(language.Spanish)

// Title trims and title-cases a name. Missing values become "".
func Title(s string) string {
	s = Clean(s)
	if s == "" {
		return ""
	}
	return titleCaser.String(strings.Join(strings.Fields(s), " "))
}

// Fold returns s upper-cased with diacritics removed, for
// accent-insensitive comparisons ("Inscripción" -> "INSCRIPCION").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.TrimSpace(out))
}

// Partner normalizes the integration partner code; missing means the
// default partner.
func Partner(s string) string {
	s = Clean(s)
	if s == "" {
		return constants.DefaultPartner
	}
	return strings.ToUpper(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
