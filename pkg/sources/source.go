// Package sources reads the tabular inputs of an enrollment run: the
// registrar exports (students or moderators), the LMS user export used as
// reference accounts, and the course target list.
//
// Spreadsheets are read with excelize and csv files with encoding/csv.
// Headers are matched ignoring case, accents, spaces and underscores, so
// "Cod Inscripcion" satisfies the COD_INSCRIPCIÓN column.
//
// Example usage:
//
//	load, err := sources.LoadRecords(ctx, "./banner", roster.Student)
//	if errors.IsNoSourceData(err) {
//	    // nothing usable: stop before producing output
//	}
//	for _, f := range load.Files {
//	    fmt.Println(f.Path, f.Rows, f.Err)
//	}
package sources

import (
	"path/filepath"
	"slices"
	"strings"
)

// ID identifies a kind of source table.
type ID string

// String returns the string representation of a source id.
func (id ID) String() string {
	return string(id)
}

// Source table kinds.
const (
	StudentsID   ID = "students"
	ModeratorsID ID = "moderators"
	AccountsID   ID = "accounts"
	CoursesID    ID = "courses"
)

// IDs returns all source table kinds.
func IDs() []ID {
	return []ID{StudentsID, ModeratorsID, AccountsID, CoursesID}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Format is the file format of a table.
type Format string

// Supported formats.
const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DetectFormat returns the format implied by the file extension.
func DetectFormat(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, true
	case ".csv":
		return FormatCSV, true
	default:
		return "", false
	}
}
