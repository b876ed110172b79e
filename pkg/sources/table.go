package sources

import (
	"strings"

	"github.com/upbvirtual/enroller/pkg/normalize"
)

// Table is a header plus data rows of cell text.
type Table struct {
	Path   string
	Sheet  string // empty for csv
	Header []string
	Rows   [][]string

	// FirstRow is the 1-based file row of Rows[0].
	FirstRow int

	index map[string]int
}

// NewTable builds a table from raw rows, the first of which is the header.
// Leading blank rows are skipped.
func NewTable(path, sheet string, rows [][]string) *Table {
	t := &Table{Path: path, Sheet: sheet}
	start := 0
	for start < len(rows) && blank(rows[start]) {
		start++
	}
	if start < len(rows) {
		t.Header = rows[start]
		t.Rows = rows[start+1:]
		t.FirstRow = start + 2
	}
	t.index = make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		k := HeaderKey(h)
		if _, dup := t.index[k]; !dup && k != "" {
			t.index[k] = i
		}
	}
	return t
}

// HeaderKey folds a column name for comparison: upper case, no accents,
// no spaces or underscores.
func HeaderKey(name string) string {
	return headerStrip.Replace(normalize.Fold(name))
}

var headerStrip = strings.NewReplacer(" ", "", "_", "", "\u00a0", "", "\ufeff", "")

// Column returns the index of a named column.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[HeaderKey(name)]
	return i, ok
}

// Missing returns the names that have no matching column.
func (t *Table) Missing(names []string) []string {
	var out []string
	for _, n := range names {
		if _, ok := t.Column(n); !ok {
			out = append(out, n)
		}
	}
	return out
}

// Cell returns the text of column name in row, or "" when either is absent.
func (t *Table) Cell(row []string, name string) string {
	i, ok := t.Column(name)
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
