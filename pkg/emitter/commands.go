package emitter

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/upbvirtual/enroller/pkg/constants"
	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/reconciler"
)

// WriteCourse appends the command lines of res to the course file in dir,
// creating dir and the file as needed. Repeated runs accumulate.
func WriteCourse(dir string, res *reconciler.Result) (err error) {
	if res == nil {
		return errors.NewValidationError("result", nil, "cannot be nil")
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	path := commandFile(dir, res.Course.Name)
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
	for _, cmd := range res.Commands() {
		if _, err := w.WriteString(cmd.Line() + "\n"); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

func commandFile(dir, course string) string {
	return filepath.Join(dir, constants.CommandFilePrefix+course+constants.CommandFileExt)
}
