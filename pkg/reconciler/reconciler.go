// Package reconciler decides, record by record, which provisioning commands
// bring the LMS in line with the enrollment source. Process modes are
// strategies; the reference account table tells new users from existing
// ones. A bad record is skipped with a reason and never fails the course.
package reconciler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/upbvirtual/enroller/pkg/logging"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// Reconciler is the main interface for reconciling one course.
type Reconciler interface {
	// Course decides the commands for the records of a course. Records are
	// expected to be normalized, deduplicated and already sliced to course.
	Course(ctx context.Context, course roster.Course, records []roster.Record) (*Result, error)

	// Strategy returns the active process strategy.
	Strategy() Strategy
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	strategy Strategy
	accounts *roster.Accounts
	variant  roster.Variant
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{
		strategy: options.strategy,
		accounts: options.accounts,
		variant:  options.variant,
	}, nil
}

// Strategy returns the active process strategy.
func (r *reconciler) Strategy() Strategy {
	return r.strategy
}

// Course implements Reconciler.
func (r *reconciler) Course(ctx context.Context, course roster.Course, records []roster.Record) (*Result, error) {
	if err := validateCourse(course); err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	result := NewResult(course)
	result.Metadata.Strategy = r.strategy.Type()
	result.Metadata.Variant = r.variant

	env := Env{Course: course, Accounts: r.accounts, Variant: r.variant}
	for _, rec := range records {
		result.add(r.decide(rec, env, logger))
	}
	result.Finalize()

	logger.Debug().
		Str("strategy", string(r.strategy.Type())).
		Int("records", len(records)).
		Int("processed", result.Processed).
		Int("skipped", result.Metadata.Stats.TotalSkipped).
		Msg("Reconciled course")
	return result, nil
}

func (r *reconciler) decide(rec roster.Record, env Env, logger *zerolog.Logger) Decision {
	if err := validateRecord(rec, env.Course); err != nil {
		logger.Warn().
			Str("person_id", rec.PersonID).
			Str("origin", rec.Origin()).
			Msg(err.Error())
		return skip(rec, SkipInvalidID, "value "+quote(rec.PersonID))
	}

	d := r.strategy.Decide(rec, env)
	if d.Emitted() {
		return d
	}

	event := logger.Debug()
	if d.Skip == SkipUnclassifiable {
		event = logger.Warn()
	}
	event.
		Str("person_id", rec.PersonID).
		Str("reason", string(d.Skip)).
		Str("detail", d.Detail).
		Msg("Record skipped")
	return d
}

func quote(s string) string {
	return "'" + s + "'"
}
