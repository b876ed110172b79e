package batch

import (
	"time"

	"github.com/upbvirtual/enroller/pkg/emitter"
	"github.com/upbvirtual/enroller/pkg/roster"
	"github.com/upbvirtual/enroller/pkg/sources"
)

// CourseReport is the outcome of one course.
type CourseReport struct {
	Course    string         `json:"course" yaml:"course"`
	SectionID string         `json:"section_id" yaml:"section_id"`
	Period    string         `json:"period" yaml:"period"`
	Records   int            `json:"records" yaml:"records"`
	Processed int            `json:"processed" yaml:"processed"`
	Skipped   int            `json:"skipped" yaml:"skipped"`
	Commands  int            `json:"commands" yaml:"commands"`
	Reasons   map[string]int `json:"skip_reasons,omitempty" yaml:"skip_reasons,omitempty"`
	Duration  time.Duration  `json:"duration" yaml:"duration"`
	File      string         `json:"file,omitempty" yaml:"file,omitempty"`
	Error     string         `json:"error,omitempty" yaml:"error,omitempty"`
	Err       error          `json:"-" yaml:"-"`
}

// Failed reports whether the course was aborted.
func (c CourseReport) Failed() bool {
	return c.Err != nil
}

// Totals aggregates every course of a run.
type Totals struct {
	Courses   int `json:"courses" yaml:"courses"`
	Failed    int `json:"failed" yaml:"failed"`
	Records   int `json:"records" yaml:"records"`
	Processed int `json:"processed" yaml:"processed"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Commands  int `json:"commands" yaml:"commands"`
}

// Report is the outcome of a run.
type Report struct {
	RunID     string         `json:"run_id" yaml:"run_id"`
	Variant   roster.Variant `json:"variant" yaml:"variant"`
	Mode      roster.Mode    `json:"mode" yaml:"mode"`
	StartedAt time.Time      `json:"started_at" yaml:"started_at"`
	Duration  time.Duration  `json:"duration" yaml:"duration"`

	// Input preparation, filled by Prepare.
	SourceFiles []sources.FileReport `json:"source_files,omitempty" yaml:"source_files,omitempty"`
	Rejected    int                  `json:"rejected_rows" yaml:"rejected_rows"`
	Filtered    int                  `json:"filtered_rows" yaml:"filtered_rows"`
	Duplicates  int                  `json:"duplicates" yaml:"duplicates"`
	Unassigned  int                  `json:"unassigned_records" yaml:"unassigned_records"`

	Courses []CourseReport      `json:"courses" yaml:"courses"`
	Totals  Totals              `json:"totals" yaml:"totals"`
	Merge   *emitter.MergeStats `json:"merge,omitempty" yaml:"merge,omitempty"`
}

func (r *Report) add(c CourseReport) {
	r.Courses = append(r.Courses, c)
	r.Totals.Courses++
	if c.Failed() {
		r.Totals.Failed++
	}
	r.Totals.Records += c.Records
	r.Totals.Processed += c.Processed
	r.Totals.Skipped += c.Skipped
	r.Totals.Commands += c.Commands
}

// Failures returns the courses that were aborted.
func (r *Report) Failures() []CourseReport {
	var out []CourseReport
	for _, c := range r.Courses {
		if c.Failed() {
			out = append(out, c)
		}
	}
	return out
}
