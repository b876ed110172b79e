package roster

import (
	"fmt"
	"strings"
	"time"
)

// Variant distinguishes student feeds from course-staff feeds.
type Variant string

const (
	// Student records come from the enrollment export.
	Student Variant = "student"
	// Moderator records come from the teaching-assignment export.
	Moderator Variant = "moderator"
)

// ParseVariant accepts the English and Spanish names of a variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student", "students", "estudiante", "estudiantes", "est":
		return Student, nil
	case "moderator", "moderators", "moderador", "moderadores", "mod":
		return Moderator, nil
	default:
		return "", fmt.Errorf("unknown variant %q", s)
	}
}

// Status is the enrollment state of a record in the source system.
type Status string

const (
	// StatusUnspecified means the source carried no recognizable state.
	StatusUnspecified Status = ""
	// StatusEnrolled is an active enrollment (Banner "Inscrito").
	StatusEnrolled Status = "Enrolled"
	// StatusCancelled is a cancelled enrollment (Banner "Cancelado").
	StatusCancelled Status = "Cancelled"
	// StatusRemoved is an enrollment deleted from the list (Banner "Eliminado").
	StatusRemoved Status = "Removed"
)

// PaymentFlag is the Y/N payment marker of partner students.
type PaymentFlag string

const (
	// Paid marks a student whose payment was received.
	Paid PaymentFlag = "Y"
	// Unpaid is the default for anything but an explicit yes.
	Unpaid PaymentFlag = "N"
)

// Record is one normalized enrollment row.
type Record struct {
	Variant Variant

	Period    string // academic term code, e.g. "202541"
	SectionID string // cross-list key used to match courses
	NRC       string // raw section number

	PersonID       string // zero-padded to 9 characters
	DocumentType   string
	DocumentNumber string
	FirstName      string
	LastName       string
	Email          string

	Status         Status
	EnrollmentCode string
	PaymentFlag    PaymentFlag
	Partner        string

	ActivityDate *time.Time

	// Provenance for diagnostics.
	SourceFile string
	SourceRow  int
}

// Key identifies a record for deduplication.
type Key struct {
	Period    string
	SectionID string
	PersonID  string
}

// Key returns the deduplication key of the record.
func (r Record) Key() Key {
	return Key{Period: r.Period, SectionID: r.SectionID, PersonID: r.PersonID}
}

// Slice identifies the course slice a record belongs to.
type Slice struct {
	Period    string
	SectionID string
}

// Slice returns the (period, section) pair used to match course targets.
func (r Record) Slice() Slice {
	return Slice{Period: r.Period, SectionID: r.SectionID}
}

// Origin renders the source location of the record for log lines.
func (r Record) Origin() string {
	if r.SourceFile == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", r.SourceFile, r.SourceRow)
}
