package roster

// Raw is a source row mapped onto the typed schema of its variant, before
// any cleaning. Every field holds the cell text exactly as read; fields the
// variant does not carry stay empty.
type Raw struct {
	Period         string
	NRC            string
	CrossList      string
	PersonID       string
	DocumentType   string
	Document       string
	Email          string
	FirstName      string
	LastName       string
	EnrollmentCode string
	Status         string
	ActivityDate   string
	Payment        string
	Partner        string

	SourceFile string
	SourceRow  int
}
