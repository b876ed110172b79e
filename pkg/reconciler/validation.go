package reconciler

import (
	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/normalize"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// validateRecord rejects records that must never reach a command line.
func validateRecord(rec roster.Record, course roster.Course) *errors.RecordError {
	if !normalize.ValidID(rec.PersonID) {
		return &errors.RecordError{
			Reason:   string(SkipInvalidID),
			PersonID: rec.PersonID,
			Course:   course.Name,
			Row:      rec.SourceRow,
		}
	}
	return nil
}

// validateCourse checks the course target before any record is processed.
func validateCourse(course roster.Course) error {
	if course.Name == "" {
		return errors.NewValidationError("course.name", course.Name, "cannot be empty")
	}
	if course.SectionID == "" {
		return errors.NewValidationError("course.section_id", course.SectionID, "cannot be empty")
	}
	return nil
}
