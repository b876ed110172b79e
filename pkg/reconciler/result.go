package reconciler

import (
	"fmt"
	"time"

	"github.com/upbvirtual/enroller/pkg/roster"
)

// Result represents the outcome of reconciling one course.
type Result struct {
	Course    roster.Course
	Decisions []Decision

	// Processed counts records that produced commands.
	Processed int

	// Skipped counts records per skip reason.
	Skipped map[SkipReason]int

	Metadata ResultMetadata
}

// ResultMetadata contains metadata about the reconciliation.
type ResultMetadata struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Strategy used for the course
	Strategy StrategyType

	Variant roster.Variant

	Stats ResultStatistics
}

// ResultStatistics contains statistics about the reconciliation.
type ResultStatistics struct {
	RecordsSeen  int
	Commands     int
	Created      int
	Updated      int
	Unenrolled   int
	TotalSkipped int
	TotalTimeMs  int64
}

// NewResult creates a new result with defaults.
func NewResult(course roster.Course) *Result {
	return &Result{
		Course:  course,
		Skipped: make(map[SkipReason]int),
		Metadata: ResultMetadata{
			StartTime: time.Now(),
		},
	}
}

// add records a decision and updates the counters.
func (r *Result) add(d Decision) {
	r.Decisions = append(r.Decisions, d)
	r.Metadata.Stats.RecordsSeen++
	if !d.Emitted() {
		r.Skipped[d.Skip]++
		r.Metadata.Stats.TotalSkipped++
		return
	}
	r.Processed++
	for _, c := range d.Commands {
		r.Metadata.Stats.Commands++
		switch c.Kind {
		case roster.Create:
			r.Metadata.Stats.Created++
		case roster.Update:
			r.Metadata.Stats.Updated++
		case roster.Unenroll:
			r.Metadata.Stats.Unenrolled++
		}
	}
}

// Commands returns every command of the course in emission order.
func (r *Result) Commands() []roster.Command {
	out := make([]roster.Command, 0, r.Metadata.Stats.Commands)
	for _, d := range r.Decisions {
		out = append(out, d.Commands...)
	}
	return out
}

// Skips returns the decisions that produced no commands.
func (r *Result) Skips() []Decision {
	var out []Decision
	for _, d := range r.Decisions {
		if !d.Emitted() {
			out = append(out, d)
		}
	}
	return out
}

// Summary returns the audit row of the course.
func (r *Result) Summary() roster.Summary {
	return roster.Summary{
		CourseName: r.Course.Name,
		SectionID:  r.Course.SectionID,
		Processed:  r.Processed,
	}
}

// String returns a human-readable summary of the result.
func (r *Result) String() string {
	return fmt.Sprintf("%s (section %s): %d processed, %d skipped, %d commands",
		r.Course.Name, r.Course.SectionID, r.Processed, r.Metadata.Stats.TotalSkipped, r.Metadata.Stats.Commands)
}

// Finalize calculates duration and marks completion.
func (r *Result) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
	r.Metadata.Stats.TotalTimeMs = r.Metadata.Duration.Milliseconds()
}
