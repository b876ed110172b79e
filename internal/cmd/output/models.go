package output

import (
	"io"

	"github.com/upbvirtual/enroller/internal/cmd/alerts"
	"github.com/upbvirtual/enroller/internal/cmd/constants"
	"github.com/upbvirtual/enroller/internal/cmd/table"
	"github.com/upbvirtual/enroller/pkg/batch"
	"github.com/upbvirtual/enroller/pkg/emitter"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// isTable reports whether format renders as a table.
func isTable(format string) bool {
	switch format {
	case constants.FormatTable, constants.FormatWide, "":
		return true
	}
	return false
}

// FormatReport renders a run report. Tables show one line per course plus
// a short summary; json and yaml emit the whole report.
func FormatReport(w io.Writer, format string, r *batch.Report) error {
	formatter := NewFormatter(Format(format))
	if !isTable(format) {
		return formatter.Format(w, r)
	}

	wide := format == constants.FormatWide
	if wide && len(r.SourceFiles) > 0 {
		if err := formatter.Format(w, table.SourcesToTableData(r.SourceFiles)); err != nil {
			return err
		}
	}
	if err := formatter.Format(w, table.ReportToTableData(r, wide)); err != nil {
		return err
	}

	return alerts.Write(w, alerts.FromReport(r))
}

// FormatCourses renders the course targets of a run.
func FormatCourses(w io.Writer, format string, courses []roster.Course) error {
	formatter := NewFormatter(Format(format))
	if isTable(format) {
		return formatter.Format(w, table.CoursesToTableData(courses))
	}
	return formatter.Format(w, courses)
}

// FormatMerge renders the outcome of a consolidation.
func FormatMerge(w io.Writer, format string, s emitter.MergeStats) error {
	formatter := NewFormatter(Format(format))
	if !isTable(format) {
		return formatter.Format(w, s)
	}
	if err := formatter.Format(w, table.MergeToTableData(s)); err != nil {
		return err
	}
	return alerts.Write(w, []*alerts.Alert{
		alerts.New(alerts.LevelSuccess, "merged %d files (%d bytes) into %s", len(s.Files), s.Bytes, s.Target),
	})
}
