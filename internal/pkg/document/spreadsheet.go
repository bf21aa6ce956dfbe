package document

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Column is a typed worksheet column: header label plus display width.
type Column struct {
	Header string
	Width  float64
}

// Sheet is the worksheet model both spreadsheet serializations render.
type Sheet struct {
	Name    string
	Columns []Column
	Rows    [][]string
}

// WriteXLSX renders the sheet as a native workbook and streams it to w.
func (s Sheet) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	name := s.Name
	if name == "" {
		name = "Report"
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	headers := make([]interface{}, len(s.Columns))
	for i, col := range s.Columns {
		headers[i] = col.Header
		if col.Width > 0 {
			colName, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return fmt.Errorf("failed to resolve column name: %w", err)
			}
			if err := f.SetColWidth(name, colName, colName, col.Width); err != nil {
				return fmt.Errorf("failed to set column width: %w", err)
			}
		}
	}
	if err := f.SetSheetRow(name, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range s.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve row coordinates: %w", err)
		}
		if err := f.SetSheetRow(name, start, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteCSV renders the same sheet as comma-separated text.
func (s Sheet) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		headers[i] = col.Header
	}
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, row := range s.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
