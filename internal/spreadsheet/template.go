package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/Soumendu22/NSBack/internal/constants"

	"github.com/xuri/excelize/v2"
)

var templateSampleRows = [][]any{
	{"John Doe", "john.doe@company.com", "+1234567890", "Windows 11", "22H2", "192.168.1.100", "00:1B:44:11:3A:B7"},
	{"Bob Johnson", "bob.johnson@company.com", "+1234567892", "Ubuntu 22.04", "22.04 LTS", "192.168.1.102", "00:1B:44:11:3A:B9"},
}

var templateColumnWidths = []float64{15, 25, 15, 15, 15, 15, 18}

// DemoTemplate builds the bulk import example workbook: one sheet with the required
// header row and two sample devices.
func DemoTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := constants.DemoTemplateSheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(constants.RequiredImportColumns))
	for i, col := range constants.RequiredImportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range templateSampleRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write sample row: %w", err)
		}
	}

	for i, width := range templateColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	return f.WriteToBuffer()
}
