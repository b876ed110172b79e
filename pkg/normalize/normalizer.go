package normalize

import (
	"strconv"
	"time"

	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// Normalizer turns raw rows of one variant into roster records.
type Normalizer struct {
	variant roster.Variant
	minDate *time.Time
	issues  []error
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithMinDate keeps only records whose activity date is on or after d.
// Records without a parseable date are dropped while the filter is active.
func WithMinDate(d time.Time) Option {
	return func(n *Normalizer) {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		n.minDate = &day
	}
}

// New creates a Normalizer for the given variant.
func New(variant roster.Variant, opts ...Option) *Normalizer {
	n := &Normalizer{variant: variant}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Record cleans a single row. It fails with a *errors.ValidationError when
// the row has no period or no section key.
func (n *Normalizer) Record(raw roster.Raw) (roster.Record, error) {
	rec := roster.Record{
		Variant:        n.variant,
		Period:         Code(raw.Period),
		NRC:            Code(raw.NRC),
		SectionID:      Code(raw.CrossList),
		PersonID:       PadID(raw.PersonID),
		DocumentType:   Clean(raw.DocumentType),
		DocumentNumber: Code(raw.Document),
		FirstName:      Title(raw.FirstName),
		LastName:       Title(raw.LastName),
		Email:          Clean(raw.Email),
		EnrollmentCode: Code(raw.EnrollmentCode),
		ActivityDate:   ParseDate(raw.ActivityDate),
		SourceFile:     raw.SourceFile,
		SourceRow:      raw.SourceRow,
	}
	if rec.SectionID == "" {
		rec.SectionID = rec.NRC
	}

	switch n.variant {
	case roster.Moderator:
		// Staff assignments carry no enrollment state; being listed is being enrolled.
		rec.Status = roster.StatusEnrolled
	default:
		rec.Status = Status(raw.Status)
		rec.PaymentFlag = Payment(raw.Payment)
		rec.Partner = Partner(raw.Partner)
	}

	if rec.Period == "" {
		return rec, errors.NewValidationError("period", raw.Period, "missing academic period at "+origin(raw))
	}
	if rec.SectionID == "" {
		return rec, errors.NewValidationError("section", raw.NRC, "missing NRC and cross-list key at "+origin(raw))
	}
	return rec, nil
}

// All normalizes rows in order, applying the date filter. Rejected rows are
// collected and available through Issues.
func (n *Normalizer) All(rows []roster.Raw) []roster.Record {
	out := make([]roster.Record, 0, len(rows))
	for _, raw := range rows {
		rec, err := n.Record(raw)
		if err != nil {
			n.issues = append(n.issues, err)
			continue
		}
		if !n.keep(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Issues returns the rows rejected so far.
func (n *Normalizer) Issues() []error {
	return n.issues
}

func (n *Normalizer) keep(rec roster.Record) bool {
	if n.minDate == nil {
		return true
	}
	if rec.ActivityDate == nil {
		return false
	}
	return !rec.ActivityDate.Before(*n.minDate)
}

func origin(raw roster.Raw) string {
	if raw.SourceFile == "" {
		return "unknown source"
	}
	return raw.SourceFile + " row " + strconv.Itoa(raw.SourceRow)
}
