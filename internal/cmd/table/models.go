// Package table converts run results into rows for the table formatter.
package table

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/upbvirtual/enroller/internal/cmd/emoji"
	"github.com/upbvirtual/enroller/pkg/batch"
	"github.com/upbvirtual/enroller/pkg/emitter"
	"github.com/upbvirtual/enroller/pkg/roster"
	"github.com/upbvirtual/enroller/pkg/sources"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ReportToTableData converts the per-course lines of a run report.
// Wide output adds skip reasons, duration and the command file.
func ReportToTableData(r *batch.Report, wide bool) Data {
	headers := []string{"", "Course", "Section", "Period", "Records", "Processed", "Skipped", "Commands"}
	align := []Align{AlignCenter, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Reasons", "Duration", "File")
		align = append(align, AlignLeft, AlignRight, AlignLeft)
	}

	rows := make([][]string, 0, len(r.Courses)+1)
	for _, c := range r.Courses {
		status := emoji.Success
		if c.Failed() {
			status = emoji.Error
		}
		row := []string{
			status,
			c.Course,
			c.SectionID,
			c.Period,
			strconv.Itoa(c.Records),
			strconv.Itoa(c.Processed),
			strconv.Itoa(c.Skipped),
			strconv.Itoa(c.Commands),
		}
		if wide {
			reasons := FormatReasons(c.Reasons)
			if c.Failed() {
				reasons = c.Error
			}
			row = append(row, reasons, FormatDuration(c.Duration), dash(c.File))
		}
		rows = append(rows, row)
	}

	total := []string{
		"",
		"TOTAL",
		"",
		"",
		strconv.Itoa(r.Totals.Records),
		strconv.Itoa(r.Totals.Processed),
		strconv.Itoa(r.Totals.Skipped),
		strconv.Itoa(r.Totals.Commands),
	}
	if wide {
		total = append(total, "", FormatDuration(r.Duration), "")
	}
	rows = append(rows, total)

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// SourcesToTableData lists the source files a run read.
func SourcesToTableData(files []sources.FileReport) Data {
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		status := emoji.Success
		if f.Err != nil {
			status = emoji.Warning
		}
		rows = append(rows, []string{status, f.Path, dash(f.Sheet), strconv.Itoa(f.Rows), dash(f.Problem())})
	}
	return Data{
		Headers:         []string{"", "File", "Sheet", "Rows", "Problem"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignCenter, AlignLeft, AlignLeft, AlignRight, AlignLeft},
	}
}

// CoursesToTableData converts the course targets of a run.
func CoursesToTableData(courses []roster.Course) Data {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{c.Name, c.SectionID, c.Period})
	}
	return Data{
		Headers: []string{"Course", "Section", "Period"},
		Rows:    rows,
	}
}

// MergeToTableData lists the files folded into a consolidated command file.
func MergeToTableData(s emitter.MergeStats) Data {
	rows := make([][]string, 0, len(s.Files))
	for _, f := range s.Files {
		rows = append(rows, []string{f, s.Target})
	}
	return Data{
		Headers: []string{"Source", "Target"},
		Rows:    rows,
	}
}

// FormatReasons renders skip counts as "reason=n" pairs sorted by reason.
func FormatReasons(reasons map[string]int) string {
	if len(reasons) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(reasons))
	for k := range reasons {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.Itoa(reasons[k]))
	}
	return strings.Join(parts, ", ")
}

// FormatDuration rounds to milliseconds.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.Round(time.Millisecond).String()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
