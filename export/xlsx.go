package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/magnorodriguesch/RH-DASHBOARD/engine"
)

// sheetName matches the reference dashboard's download sheet.
const sheetName = "Dados Filtrados"

// XLSX renders the filtered view as a single-sheet workbook.
func XLSX(view engine.View) ([]byte, error) {
	ds := view.Dataset()
	if ds == nil {
		return nil, fmt.Errorf("export: view has no dataset")
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("export: create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("export: drop default sheet: %w", err)
	}

	if err := writeRow(f, 1, ds.Columns); err != nil {
		return nil, err
	}
	for i := 0; i < view.Len(); i++ {
		if err := writeRow(f, i+2, rowValues(ds, view.At(i))); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("export: cell name: %w", err)
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
		return fmt.Errorf("export: write row %d: %w", rowNum, err)
	}
	return nil
}
