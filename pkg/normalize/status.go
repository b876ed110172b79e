package normalize

import "github.com/upbvirtual/enroller/pkg/roster"

var statuses = map[string]roster.Status{
	"INSCRITO":  roster.StatusEnrolled,
	"ENROLLED":  roster.StatusEnrolled,
	"CANCELADO": roster.StatusCancelled,
	"CANCELLED": roster.StatusCancelled,
	"CANCELED":  roster.StatusCancelled,
	"ELIMINADO": roster.StatusRemoved,
	"REMOVED":   roster.StatusRemoved,
	"DELETED":   roster.StatusRemoved,
}

// Status maps a source enrollment state onto roster.Status, ignoring case
// and accents. Anything unrecognized is StatusUnspecified.
func Status(s string) roster.Status {
	if IsMissing(s) {
		return roster.StatusUnspecified
	}
	return statuses[Fold(s)]
}

// Payment maps the payment marker to Paid for any affirmative spelling.
func Payment(s string) roster.PaymentFlag {
	switch Fold(s) {
	case "Y", "YES", "S", "SI", "TRUE", "1", "1.0":
		return roster.Paid
	default:
		return roster.Unpaid
	}
}
