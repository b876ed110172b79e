package sources

import (
	"github.com/xuri/excelize/v2"

	"github.com/upbvirtual/enroller/pkg/errors"
)

// Workbook is an open spreadsheet.
type Workbook struct {
	path string
	file *excelize.File
}

// OpenWorkbook opens an xlsx file for reading.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewSourceError(path, errors.WrapParse("xlsx", path, err))
	}
	return &Workbook{path: path, file: f}, nil
}

// Sheets returns the sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.file.GetSheetList()
}

// Table reads a sheet by name. Cells are read without number formatting,
// so dates arrive as Excel serials and codes keep their digits.
func (w *Workbook) Table(sheet string) (*Table, error) {
	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &errors.SourceError{Path: w.path, Sheet: sheet, Err: err}
	}
	return NewTable(w.path, sheet, rows), nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// ReadXLSX reads one sheet of an xlsx file. An empty sheet name reads the
// first sheet.
func ReadXLSX(path, sheet string) (*Table, error) {
	wb, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	if sheet == "" {
		sheets := wb.Sheets()
		if len(sheets) == 0 {
			return nil, errors.NewSourceError(path, errors.New("workbook has no sheets"))
		}
		sheet = sheets[0]
	}
	return wb.Table(sheet)
}
