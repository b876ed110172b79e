package sources

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/logging"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// FileReport describes how one source file was read.
type FileReport struct {
	Path  string `json:"path" yaml:"path"`
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
	Rows  int    `json:"rows" yaml:"rows"`
	Err   error  `json:"-" yaml:"-"`
}

// Problem returns the failure text, if any.
func (f FileReport) Problem() string {
	if f.Err == nil {
		return ""
	}
	return f.Err.Error()
}

// Load is the outcome of LoadRecords.
type Load struct {
	Rows  []roster.Raw
	Files []FileReport
}

// Skipped returns the files that could not be used.
func (l *Load) Skipped() []FileReport {
	var out []FileReport
	for _, f := range l.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

// LoadRecords reads every spreadsheet and csv file in dir using the schema
// of variant. A file that cannot be read or lacks required columns is
// reported and skipped. When no file yields rows the error wraps
// errors.ErrNoSourceData.
func LoadRecords(ctx context.Context, dir string, variant roster.Variant) (*Load, error) {
	logger := logging.FromContext(ctx)
	schema := SchemaFor(variant)

	files, err := sourceFiles(dir)
	if err != nil {
		return nil, errors.Join(errors.ErrNoSourceData, err)
	}
	if len(files) == 0 {
		return nil, errors.Join(errors.ErrNoSourceData,
			errors.NewSourceError(dir, errors.New("no .xlsx or .csv files found")))
	}

	load := &Load{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(errors.ErrCanceled, err)
		}

		t, err := readRecordTable(path, schema)
		report := FileReport{Path: path, Err: err}
		if err != nil {
			logger.Warn().Err(err).Str("file", path).Msg("Skipping source file")
			load.Files = append(load.Files, report)
			continue
		}

		report.Sheet = t.Sheet
		for i, row := range t.Rows {
			if blank(row) {
				continue
			}
			raw := schema.Map(t, row)
			raw.SourceFile = filepath.Base(path)
			raw.SourceRow = t.FirstRow + i
			load.Rows = append(load.Rows, raw)
			report.Rows++
		}
		load.Files = append(load.Files, report)
		logger.Info().Str("file", path).Str("sheet", t.Sheet).Int("rows", report.Rows).Msg("Loaded source file")
	}

	if len(load.Rows) == 0 {
		return load, errors.Join(errors.ErrNoSourceData,
			errors.NewSourceError(dir, errors.New("no source file produced records")))
	}
	return load, nil
}

// sourceFiles lists the readable tables of dir in name order, ignoring
// office lock files.
func sourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewSourceError(dir, errors.WrapIO("read", dir, err))
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, "~$") || strings.HasPrefix(name, ".") {
			continue
		}
		if _, ok := DetectFormat(name); ok {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

func readRecordTable(path string, schema Schema) (*Table, error) {
	format, _ := DetectFormat(path)
	if format == FormatCSV {
		t, err := ReadCSV(path)
		if err != nil {
			return nil, err
		}
		if missing := t.Missing(schema.Columns()); len(missing) > 0 {
			return nil, &errors.SourceError{Path: path, Missing: missing}
		}
		return t, nil
	}
	return recognizeSheet(path, schema)
}

// recognizeSheet returns the first sheet carrying every schema column,
// trying the schema's preferred sheet before the others.
func recognizeSheet(path string, schema Schema) (*Table, error) {
	wb, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, errors.NewSourceError(path, errors.New("workbook has no sheets"))
	}
	order := make([]string, 0, len(sheets))
	if schema.PreferredSheet < len(sheets) {
		order = append(order, sheets[schema.PreferredSheet])
	}
	for i, s := range sheets {
		if i != schema.PreferredSheet {
			order = append(order, s)
		}
	}

	var first *errors.SourceError
	for _, sheet := range order {
		t, err := wb.Table(sheet)
		if err != nil {
			continue
		}
		missing := t.Missing(schema.Columns())
		if len(missing) == 0 {
			return t, nil
		}
		if first == nil {
			first = &errors.SourceError{Path: path, Sheet: sheet, Missing: missing}
		}
	}
	if first == nil {
		first = errors.NewSourceError(path, errors.New("no readable sheet"))
	}
	return nil, first
}
