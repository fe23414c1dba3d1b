package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Soumendu22/NSBack/internal/constants"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Table is the first sheet of an import file. Header cells are trimmed and
// lower-cased; each row maps a header cell to its trimmed value. Blank rows are
// dropped, and Lines[i] holds the 1-based sheet row Rows[i] was read from.
type Table struct {
	Header []string
	Rows   []map[string]string
	Lines  []int
}

// record is one sheet row with the 1-based row number it came from.
type record struct {
	line  int
	cells []string
}

// SupportedExtension reports whether name carries one of the accepted extensions.
func SupportedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range constants.AllowedImportExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ReadFile parses the file at path, choosing the format from originalName's extension.
func ReadFile(path, originalName string) (*Table, error) {
	var (
		records []record
		err     error
	)
	switch strings.ToLower(filepath.Ext(originalName)) {
	case ".xlsx":
		records, err = readXLSX(path)
	case ".xls":
		records, err = readXLS(path)
	case ".csv":
		records, err = readCSV(path)
	default:
		return nil, constants.ErrUnsupportedFileType
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrUnreadableFile, err)
	}
	return newTable(records), nil
}

// MissingColumns returns the required columns absent from the header, in required order.
func (t *Table) MissingColumns(required []string) []string {
	present := make(map[string]struct{}, len(t.Header))
	for _, h := range t.Header {
		present[h] = struct{}{}
	}
	var missing []string
	for _, col := range required {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

func newTable(records []record) *Table {
	t := &Table{}
	if len(records) == 0 {
		return t
	}

	for i, cell := range records[0].cells {
		cell = strings.TrimSpace(cell)
		if i == 0 {
			cell = strings.TrimPrefix(cell, "\ufeff")
		}
		t.Header = append(t.Header, strings.ToLower(cell))
	}

	for _, rec := range records[1:] {
		row := make(map[string]string, len(t.Header))
		blank := true
		for i, name := range t.Header {
			if name == "" {
				continue
			}
			var value string
			if i < len(rec.cells) {
				value = strings.TrimSpace(rec.cells[i])
			}
			if value != "" {
				blank = false
			}
			row[name] = value
		}
		if !blank {
			t.Rows = append(t.Rows, row)
			t.Lines = append(t.Lines, rec.line)
		}
	}
	return t
}

// numbered assigns consecutive row numbers to sheets whose reader keeps empty rows in place.
func numbered(rows [][]string) []record {
	records := make([]record, len(rows))
	for i, cells := range rows {
		records[i] = record{line: i + 1, cells: cells}
	}
	return records
}

func readXLSX(path string) ([]record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return numbered(rows), nil
}

func readXLS(path string) ([]record, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook has no sheets")
	}

	var records [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			records = append(records, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		records = append(records, cells)
	}
	return numbered(records), nil
}

func readCSV(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseCSV(f)
}

// parseCSV keeps each record's starting line, since the csv reader skips empty lines.
func parseCSV(r io.Reader) ([]record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []record
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		records = append(records, record{line: line, cells: cells})
	}
}
