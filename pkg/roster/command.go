package roster

import (
	"strings"

	"github.com/upbvirtual/enroller/pkg/constants"
)

// CommandKind is the verb of a provisioning command.
type CommandKind string

const (
	// Create provisions a new LMS user.
	Create CommandKind = "CREATE"
	// Update refreshes and reactivates an existing user.
	Update CommandKind = "UPDATE"
	// Enroll adds a user to an org unit or course.
	Enroll CommandKind = "ENROLL"
	// Unenroll removes a user from an org unit or course.
	Unenroll CommandKind = "UNENROLL"
)

// Command is one line of the batch importer log.
// Fields not used by a kind are left empty.
type Command struct {
	Kind      CommandKind
	PersonID  string
	Document  string // "<type>. <number>" for CREATE/UPDATE
	FirstName string
	LastName  string
	Role      string
	Email     string
	Target    string // org unit or course short name for ENROLL/UNENROLL
}

// Line renders the command in the importer's positional format.
// Embedded commas are not escaped; the importer does not support quoting.
func (c Command) Line() string {
	var f []string
	switch c.Kind {
	case Create:
		f = []string{string(c.Kind), c.PersonID, c.Document, c.FirstName, c.LastName, "", c.Role, constants.ActiveFlag, c.Email}
	case Update:
		f = []string{string(c.Kind), c.PersonID, c.Document, c.FirstName, c.LastName, "", constants.ActiveFlag, c.Email}
	case Enroll:
		f = []string{string(c.Kind), c.PersonID, "", c.Role, c.Target}
	case Unenroll:
		f = []string{string(c.Kind), c.PersonID, "", c.Target}
	default:
		return ""
	}
	return strings.Join(f, ",")
}

// String implements fmt.Stringer.
func (c Command) String() string {
	return c.Line()
}
