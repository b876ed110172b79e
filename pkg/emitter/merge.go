package emitter

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/upbvirtual/enroller/pkg/constants"
	"github.com/upbvirtual/enroller/pkg/errors"
)

// MergeStats describes a consolidation.
type MergeStats struct {
	Target string   `json:"target" yaml:"target"`
	Files  []string `json:"files" yaml:"files"`
	Bytes  int64    `json:"bytes" yaml:"bytes"`
}

// CommandFiles lists the course command files in dir sorted by name,
// excluding the file at exclude and every consolidated file.
func CommandFiles(dir, exclude string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapIO("read", dir, err)
	}
	skip, _ := filepath.Abs(exclude)

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, constants.CommandFilePrefix) || !strings.HasSuffix(name, constants.CommandFileExt) {
			continue
		}
		if strings.HasPrefix(name, constants.MergedFilePrefix) {
			continue
		}
		path := filepath.Join(dir, name)
		if abs, _ := filepath.Abs(path); exclude != "" && abs == skip {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// Merge concatenates every course command file in dir into target,
// replacing whatever target held before.
func Merge(dir, target string) (stats MergeStats, err error) {
	stats.Target = target
	files, err := CommandFiles(dir, target)
	if err != nil {
		return stats, err
	}

	if d := filepath.Dir(target); d != "." {
		if err := os.MkdirAll(d, constants.DirPermissions); err != nil {
			return stats, errors.WrapIO("create", d, err)
		}
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return stats, errors.WrapIO("open", target, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.WrapIO("close", target, cerr)
		}
	}()

	w := bufio.NewWriter(out)
	for _, path := range files {
		n, err := appendFile(w, path)
		if err != nil {
			return stats, err
		}
		stats.Files = append(stats.Files, filepath.Base(path))
		stats.Bytes += n
	}
	if err := w.Flush(); err != nil {
		return stats, errors.WrapIO("write", target, err)
	}
	return stats, nil
}

func appendFile(w io.Writer, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return n, errors.WrapIO("read", path, err)
	}
	return n, nil
}

// Clean removes the course command files, the summary, the diagnostics
// log and the merged file of a previous run. Missing files are ignored.
func Clean(p Paths) error {
	var errs []error
	if files, err := CommandFiles(p.OutputDir, ""); err == nil {
		for _, f := range files {
			errs = append(errs, remove(f))
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		errs = append(errs, err)
	}
	for _, f := range []string{p.Summary, p.Diagnostics, p.Merged} {
		if f != "" {
			errs = append(errs, remove(f))
		}
	}
	return errors.Join(errs...)
}

func remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.WrapIO("remove", path, err)
	}
	return nil
}
