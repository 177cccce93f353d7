// Package export serializes a filtered view of the employee dataset into
// downloadable byte streams. Both exporters emit exactly the view's rows
// with the normalized and derived columns; presentation-only values (age
// buckets, region codes, computed cost) are never included because they
// are never dataset columns.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/magnorodriguesch/RH-DASHBOARD/dataset"
	"github.com/magnorodriguesch/RH-DASHBOARD/engine"
)

// CSV renders the filtered view as UTF-8 CSV bytes, header row first.
func CSV(view engine.View) ([]byte, error) {
	ds := view.Dataset()
	if ds == nil {
		return nil, fmt.Errorf("export: view has no dataset")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ds.Columns); err != nil {
		return nil, fmt.Errorf("export: write header: %w", err)
	}
	for i := 0; i < view.Len(); i++ {
		if err := w.Write(rowValues(ds, view.At(i))); err != nil {
			return nil, fmt.Errorf("export: write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: flush: %w", err)
	}
	return buf.Bytes(), nil
}

func rowValues(ds *dataset.Dataset, e *dataset.Employee) []string {
	row := make([]string, 0, len(ds.Columns))
	for _, name := range ds.Columns {
		row = append(row, ds.CellValue(e, name))
	}
	return row
}
