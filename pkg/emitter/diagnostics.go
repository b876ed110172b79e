package emitter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/upbvirtual/enroller/pkg/constants"
	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/reconciler"
)

// WriteDiagnostics appends a course section to the diagnostics log: a
// header, one line per skipped record and the processed total.
func WriteDiagnostics(path string, res *reconciler.Result, at time.Time) (err error) {
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

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "\n=== COURSE %s - SECTION %s (%s) ===\n", res.Course.Name, res.Course.SectionID, res.Metadata.Strategy)
	fmt.Fprintf(w, "Date: %s\n", at.Format(constants.TimeFormatLog))
	for _, d := range res.Skips() {
		fmt.Fprintf(w, "skip %-20s id=%q", d.Skip, d.Record.PersonID)
		if d.Detail != "" {
			fmt.Fprintf(w, " %s", d.Detail)
		}
		if origin := d.Record.Origin(); origin != "" {
			fmt.Fprintf(w, " at %s", origin)
		}
		w.WriteString("\n")
	}
	fmt.Fprintf(w, "Total processed: %d, skipped: %d\n", res.Processed, res.Metadata.Stats.TotalSkipped)

	if err := w.Flush(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
