package sources

import (
	"bytes"
	"encoding/csv"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/upbvirtual/enroller/pkg/errors"
)

// ReadCSV reads a comma separated file. UTF-8 with or without BOM and
// UTF-16 with BOM are decoded; other bytes are read as Windows-1252, which
// is what spreadsheet tools on the registrar's machines write.
func ReadCSV(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewSourceError(path, errors.WrapIO("read", path, err))
	}
	text, err := decode(data)
	if err != nil {
		return nil, errors.NewSourceError(path, errors.WrapParse("csv", path, err))
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.NewSourceError(path, errors.WrapParse("csv", path, err))
	}
	return NewTable(path, "", rows), nil
}

func decode(data []byte) ([]byte, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return nil, err
	}
	if utf8.Valid(out) {
		return out, nil
	}
	return charmap.Windows1252.NewDecoder().Bytes(data)
}
