// Package batch runs an enrollment reconciliation over a course list:
// records are indexed by (period, section), every course is reconciled and
// written independently, and the course files are merged at the end.
package batch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/upbvirtual/enroller/pkg/emitter"
	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/logging"
	"github.com/upbvirtual/enroller/pkg/reconciler"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// Orchestrator drives one run.
type Orchestrator struct {
	reconciler reconciler.Reconciler
	emitter    *emitter.Emitter
	variant    roster.Variant
	merge      bool
	runID      string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithMerge controls whether course files are consolidated after the run.
func WithMerge(enabled bool) Option {
	return func(o *Orchestrator) {
		o.merge = enabled
	}
}

// WithRunID sets the run id instead of generating one.
func WithRunID(id string) Option {
	return func(o *Orchestrator) {
		o.runID = id
	}
}

// New creates an Orchestrator.
func New(r reconciler.Reconciler, e *emitter.Emitter, variant roster.Variant, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		reconciler: r,
		emitter:    e,
		variant:    variant,
		merge:      true,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	return o
}

// RunID returns the id attached to logs and the report.
func (o *Orchestrator) RunID() string {
	return o.runID
}

// Index groups records by the course slice they belong to, keeping order.
func Index(records []roster.Record) map[roster.Slice][]roster.Record {
	idx := make(map[roster.Slice][]roster.Record)
	for _, r := range records {
		s := r.Slice()
		idx[s] = append(idx[s], r)
	}
	return idx
}

// Run reconciles and writes every course in list order. A failing course
// is recorded in the report and the run goes on. Cancellation is checked
// between courses; the partial report is returned with the error.
func (o *Orchestrator) Run(ctx context.Context, courses []roster.Course, records []roster.Record) (*Report, error) {
	ctx = logging.WithRunID(ctx, o.runID)
	ctx = logging.WithVariant(ctx, string(o.variant))
	logger := logging.FromContext(ctx)

	report := &Report{
		RunID:     o.runID,
		Variant:   o.variant,
		Mode:      o.reconciler.Strategy().Mode(),
		StartedAt: time.Now(),
	}
	defer func() {
		report.Duration = time.Since(report.StartedAt)
	}()

	idx := Index(records)
	claimed := make(map[roster.Slice]struct{}, len(courses))
	for _, course := range courses {
		if err := ctx.Err(); err != nil {
			logger.Warn().Int("remaining", len(courses)-len(report.Courses)).Msg("Run canceled")
			return report, errors.Join(errors.ErrCanceled, err)
		}
		claimed[course.Slice()] = struct{}{}
		report.add(o.course(ctx, course, idx[course.Slice()]))
	}
	// Targets sharing a slice claim its records once.
	assigned := 0
	for s := range claimed {
		assigned += len(idx[s])
	}
	report.Unassigned = len(records) - assigned

	logger.Info().
		Int("courses", report.Totals.Courses).
		Int("failed", report.Totals.Failed).
		Int("processed", report.Totals.Processed).
		Int("commands", report.Totals.Commands).
		Msg("Processed all courses")

	if !o.merge {
		return report, nil
	}
	stats, err := o.emitter.Merge()
	if err != nil {
		logger.Error().Err(err).Msg("Merging command files failed")
		return report, err
	}
	report.Merge = &stats
	logger.Info().Str("target", stats.Target).Int("files", len(stats.Files)).Msg("Merged command files")
	return report, nil
}

func (o *Orchestrator) course(ctx context.Context, course roster.Course, records []roster.Record) CourseReport {
	ctx = logging.WithCourse(ctx, course.Name, course.SectionID)
	logger := logging.FromContext(ctx)
	start := time.Now()

	cr := CourseReport{
		Course:    course.Name,
		SectionID: course.SectionID,
		Period:    course.Period,
		Records:   len(records),
		File:      o.emitter.Paths().CommandFile(course.Name),
	}
	fail := func(err error) CourseReport {
		cr.Err = &errors.CourseError{Course: course.Name, SectionID: course.SectionID, Err: err}
		cr.Error = cr.Err.Error()
		cr.Duration = time.Since(start)
		logger.Error().Err(err).Msg("Course failed")
		return cr
	}

	res, err := o.reconciler.Course(ctx, course, records)
	if err != nil {
		return fail(err)
	}
	if err := o.emitter.Emit(res); err != nil {
		return fail(err)
	}

	cr.Processed = res.Processed
	cr.Skipped = res.Metadata.Stats.TotalSkipped
	cr.Commands = res.Metadata.Stats.Commands
	if len(res.Skipped) > 0 {
		cr.Reasons = make(map[string]int, len(res.Skipped))
		for reason, n := range res.Skipped {
			cr.Reasons[string(reason)] = n
		}
	}
	cr.Duration = time.Since(start)

	logger.Info().
		Int("records", cr.Records).
		Int("processed", cr.Processed).
		Int("skipped", cr.Skipped).
		Msg("Course written")
	return cr
}
