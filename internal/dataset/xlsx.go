package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

type xlsxLoader struct{}

func (xlsxLoader) CanLoad(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xlsx")
}

// Load reads the first sheet of a workbook under the same header contract as
// the CSV loader. Empty trailing cells come back as short rows from excelize,
// so rows are padded to the column count before parsing; a truly over-long row
// is still malformed.
func (xlsxLoader) Load(path string) (*Table, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read sheet %s: %w", sheets[0], err)}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read header: sheet %s is empty", sheets[0])}
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	t := &Table{Name: filepath.Base(path)}
	for i, rec := range rows[1:] {
		if len(rec) < len(Columns) {
			padded := make([]string, len(Columns))
			copy(padded, rec)
			rec = padded
		}
		sale, err := parseRecord(path, i+1, rec)
		if err != nil {
			return nil, err
		}
		t.Sales = append(t.Sales, sale)
	}
	return t, nil
}
