package reconciler

import "github.com/upbvirtual/enroller/pkg/roster"

// SkipReason explains why a record produced no commands.
type SkipReason string

const (
	// NotSkipped marks a record that produced commands.
	NotSkipped SkipReason = ""
	// SkipInvalidID is a missing, placeholder or all-zero person id.
	SkipInvalidID SkipReason = "invalid_id"
	// SkipOutOfScope is a status the current mode does not act on.
	SkipOutOfScope SkipReason = "out_of_scope"
	// SkipPaymentRequired is an external-partner student without payment.
	SkipPaymentRequired SkipReason = "payment_required"
	// SkipPartnerNotAllowed is a student of a partner that is never enrolled.
	SkipPartnerNotAllowed SkipReason = "partner_not_allowed"
	// SkipUnclassifiable is a program type with no role mapping.
	SkipUnclassifiable SkipReason = "unclassifiable"
)

// Decision is the outcome for a single record.
type Decision struct {
	Record   roster.Record
	Commands []roster.Command
	Skip     SkipReason
	Detail   string // free text for diagnostics, e.g. the offending value
}

// Emitted reports whether the record produced at least one command.
func (d Decision) Emitted() bool {
	return len(d.Commands) > 0
}

func skip(rec roster.Record, reason SkipReason, detail string) Decision {
	return Decision{Record: rec, Skip: reason, Detail: detail}
}
