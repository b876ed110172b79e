package normalize

import (
	"strconv"
	"strings"
)

// DocumentPath records which branch produced a formatted document field.
type DocumentPath int

const (
	// Formatted means the number parsed as an integer and was rendered with
	// '.' thousands separators.
	Formatted DocumentPath = iota
	// RawNumber means the number did not parse and was kept verbatim.
	RawNumber
	// NumberOnly means there was no document type, so no "<type>. " prefix.
	NumberOnly
)

func (p DocumentPath) String() string {
	switch p {
	case Formatted:
		return "formatted"
	case RawNumber:
		return "raw_number"
	case NumberOnly:
		return "number_only"
	default:
		return "unknown"
	}
}

// DocumentResult is the outcome of FormatDocument.
type DocumentResult struct {
	Value  string // text placed in the command field
	Number string // number part alone
	Path   DocumentPath
}

// FormatDocument renders "<type>. <number>" for CREATE and UPDATE lines.
// An integer number gets '.' thousands separators; otherwise the raw value
// is kept. With no document type only the number is returned.
func FormatDocument(docType, number string) DocumentResult {
	docType = Clean(docType)
	raw := Clean(number)

	res := DocumentResult{Number: raw, Path: RawNumber}
	if n, ok := parseInteger(raw); ok {
		res.Number = groupThousands(n)
		res.Path = Formatted
	}

	if docType == "" {
		res.Value = res.Number
		res.Path = NumberOnly
		return res
	}
	res.Value = docType + ". " + res.Number
	return res
}

func parseInteger(s string) (uint64, bool) {
	s = Code(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func groupThousands(n uint64) string {
	digits := strconv.FormatUint(n, 10)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
