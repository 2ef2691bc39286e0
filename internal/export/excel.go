package export

import (
	"github.com/xuri/excelize/v2"

	"sqlgateway/pkg/dbconn"
)

const sheetName = "SQL_Results"

// writeWorkbook renders the result set as an .xlsx workbook with a single
// sheet: header row first, then data rows.
func writeWorkbook(rs *dbconn.Resultset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	header := make([]any, len(rs.Columns))
	for i, c := range rs.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	cells := make([]any, len(rs.Columns))
	for i, row := range rs.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		for j, v := range row {
			cells[j] = excelCell(v)
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// excelCell maps normalized values to cell values excelize understands.
func excelCell(v any) any {
	if m, ok := v.(map[string]any); ok {
		if b64, ok := m["base64"].(string); ok {
			return b64
		}
	}
	return v
}
