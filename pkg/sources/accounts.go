package sources

import (
	"context"
	"io/fs"
	"os"

	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/logging"
	"github.com/upbvirtual/enroller/pkg/normalize"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// ReadTable reads the first sheet of a workbook or a whole csv file.
// A missing file reports a NotFoundError.
func ReadTable(path string) (*Table, error) {
	format, ok := DetectFormat(path)
	if !ok {
		return nil, errors.NewSourceError(path, errors.NewValidationError("path", path, "unsupported file type, want .xlsx or .csv"))
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, errors.NewSourceError(path, errors.NewNotFoundError("file", path))
	}
	if format == FormatCSV {
		return ReadCSV(path)
	}
	return ReadXLSX(path, "")
}

// LoadAccounts reads the LMS user export. Person ids are zero-padded;
// rows without a user name are ignored.
func LoadAccounts(ctx context.Context, path string, variant roster.Variant) (*roster.Accounts, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if missing := t.Missing(AccountColumns(variant)); len(missing) > 0 {
		return nil, &errors.SourceError{Path: path, Sheet: t.Sheet, Missing: missing}
	}

	list := make([]roster.Account, 0, t.Len())
	for _, row := range t.Rows {
		id := normalize.PadID(t.Cell(row, ColUserName))
		if id == "" {
			continue
		}
		acc := roster.Account{
			PersonID:  id,
			FirstName: normalize.Clean(t.Cell(row, ColFirstName)),
			LastName:  normalize.Clean(t.Cell(row, ColLastName)),
		}
		if variant == roster.Moderator {
			acc.RoleID = normalize.Code(t.Cell(row, ColOrgRoleID))
		}
		list = append(list, acc)
	}

	accounts := roster.NewAccounts(list)
	logging.FromContext(ctx).Info().
		Str("file", path).
		Int("rows", t.Len()).
		Int("accounts", accounts.Len()).
		Msg("Loaded reference accounts")
	return accounts, nil
}
