package roster

// Account is a user that already exists in the LMS.
type Account struct {
	PersonID  string
	FirstName string
	LastName  string
	RoleID    string // OrgRoleId, only loaded for moderator runs
}

// Accounts is a read-only index of reference accounts keyed by person id.
// It is built once per run and shared by every course.
type Accounts struct {
	byID map[string]Account
}

// NewAccounts indexes the given accounts. Later duplicates of the same id
// are ignored.
func NewAccounts(list []Account) *Accounts {
	idx := make(map[string]Account, len(list))
	for _, a := range list {
		if _, seen := idx[a.PersonID]; seen {
			continue
		}
		idx[a.PersonID] = a
	}
	return &Accounts{byID: idx}
}

// Lookup returns the account for id.
func (a *Accounts) Lookup(id string) (Account, bool) {
	if a == nil {
		return Account{}, false
	}
	acc, ok := a.byID[id]
	return acc, ok
}

// Exists reports whether id is already provisioned.
func (a *Accounts) Exists(id string) bool {
	_, ok := a.Lookup(id)
	return ok
}

// Len returns the number of indexed accounts.
func (a *Accounts) Len() int {
	if a == nil {
		return 0
	}
	return len(a.byID)
}
