// Package emitter writes reconciliation results to disk: one append-mode
// command file per course, the run summary, the diagnostics log and the
// consolidated command file.
package emitter

import (
	"time"

	"github.com/upbvirtual/enroller/pkg/constants"
	"github.com/upbvirtual/enroller/pkg/reconciler"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// Paths locates every file an Emitter writes.
type Paths struct {
	// OutputDir receives one command file per course.
	OutputDir string
	// Summary is the csv audit file, one row per course.
	Summary string
	// Diagnostics is the per-skip log. Empty disables it.
	Diagnostics string
	// Merged is the consolidated command file.
	Merged string
}

// DefaultPaths returns the conventional layout for a variant: command files
// under outputDir, everything else in the working directory.
func DefaultPaths(outputDir string, variant roster.Variant) Paths {
	p := Paths{OutputDir: outputDir}
	switch variant {
	case roster.Moderator:
		p.Summary = constants.ModeratorsSummaryFile
		p.Diagnostics = constants.ModeratorsDiagnosticsFile
		p.Merged = constants.ModeratorsMergedFile
	default:
		p.Summary = constants.StudentsSummaryFile
		p.Diagnostics = constants.StudentsDiagnosticsFile
		p.Merged = constants.StudentsMergedFile
	}
	return p
}

// CommandFile returns the command file path of a course.
func (p Paths) CommandFile(course string) string {
	return commandFile(p.OutputDir, course)
}

// Emitter writes results using a fixed set of paths.
type Emitter struct {
	paths Paths
	now   func() time.Time
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithClock overrides the clock used for diagnostic headers.
func WithClock(now func() time.Time) Option {
	return func(e *Emitter) {
		e.now = now
	}
}

// New creates an Emitter.
func New(paths Paths, opts ...Option) *Emitter {
	e := &Emitter{paths: paths, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Paths returns the configured paths.
func (e *Emitter) Paths() Paths {
	return e.paths
}

// Emit writes everything produced by one course: its command lines, its
// summary row and, when enabled, its diagnostics.
func (e *Emitter) Emit(res *reconciler.Result) error {
	if err := WriteCourse(e.paths.OutputDir, res); err != nil {
		return err
	}
	if err := AppendSummary(e.paths.Summary, res.Summary()); err != nil {
		return err
	}
	if e.paths.Diagnostics == "" {
		return nil
	}
	return WriteDiagnostics(e.paths.Diagnostics, res, e.now())
}

// Merge consolidates every course file into the merged file.
func (e *Emitter) Merge() (MergeStats, error) {
	return Merge(e.paths.OutputDir, e.paths.Merged)
}

// Clean removes the output of a previous run.
func (e *Emitter) Clean() error {
	return Clean(e.paths)
}
