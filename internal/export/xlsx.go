package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"go-hrgen/internal/dataset"
)

// WriteXLSX builds a workbook with one sheet per table, sheets in name order.
func WriteXLSX(path string, tables map[string]*dataset.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range sortedNames(tables) {
		// Sheet names cap at 31 chars in the xlsx format.
		sheet := name
		if len(sheet) > 31 {
			sheet = sheet[:31]
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}
		if err := writeSheet(f, sheet, tables[name]); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, table *dataset.Table) error {
	header := make([]any, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
