// Package alerts turns a run report into short status notices for the
// terminal.
package alerts

import (
	"fmt"
	"io"

	"github.com/upbvirtual/enroller/pkg/batch"
)

// Alert represents a status notification.
type Alert struct {
	Level   Level
	Message string
	Err     error
}

// New creates a new alert with the given level and message.
func New(level Level, format string, args ...any) *Alert {
	return &Alert{Level: level, Message: fmt.Sprintf(format, args...)}
}

// WithError adds an underlying error to the alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// String returns a string representation of the alert.
func (a *Alert) String() string {
	message := fmt.Sprintf("%s %s", a.Level.Icon(), a.Message)
	if a.Err != nil {
		message += fmt.Sprintf(": %v", a.Err)
	}
	return message
}

// FromReport lists what a reader of a run report should notice, most
// severe first: aborted courses, skipped source files, records that no
// course claimed, then the run summary.
func FromReport(r *batch.Report) []*Alert {
	var out []*Alert
	for _, c := range r.Failures() {
		out = append(out, New(LevelError, "%s", c.Course).WithError(c.Err))
	}
	for _, f := range r.SourceFiles {
		if f.Err != nil {
			out = append(out, New(LevelWarning, "skipped %s", f.Path).WithError(f.Err))
		}
	}
	if r.Unassigned > 0 {
		out = append(out, New(LevelWarning, "%d records match no listed course", r.Unassigned))
	}

	out = append(out,
		New(LevelInfo, "run %s (%s, %s): %d courses, %d failed, %d commands",
			r.RunID, r.Variant, r.Mode, r.Totals.Courses, r.Totals.Failed, r.Totals.Commands),
		New(LevelInfo, "rows rejected %d, filtered %d, duplicates %d",
			r.Rejected, r.Filtered, r.Duplicates),
	)
	if r.Merge != nil {
		out = append(out, New(LevelSuccess, "merged %d files into %s", len(r.Merge.Files), r.Merge.Target))
	}
	return out
}

// Write prints one alert per line.
func Write(w io.Writer, alerts []*Alert) error {
	for _, a := range alerts {
		if _, err := fmt.Fprintln(w, a.String()); err != nil {
			return err
		}
	}
	return nil
}
