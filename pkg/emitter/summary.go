package emitter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/upbvirtual/enroller/pkg/constants"
	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// AppendSummary appends one "course,section,processed" row to path.
func AppendSummary(path string, s roster.Summary) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapIO("close", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{s.CourseName, s.SectionID, strconv.Itoa(s.Processed)}); err != nil {
		return errors.WrapIO("write", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// ReadSummary reads back every row of a summary file.
func ReadSummary(path string) ([]roster.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}

	out := make([]roster.Summary, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, errors.NewParseError("csv", path, "row "+strconv.Itoa(i+1)+" has fewer than 3 fields", nil)
		}
		n, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, errors.NewParseError("csv", path, "row "+strconv.Itoa(i+1)+": processed count is not a number", err)
		}
		out = append(out, roster.Summary{CourseName: row[0], SectionID: row[1], Processed: n})
	}
	return out, nil
}
