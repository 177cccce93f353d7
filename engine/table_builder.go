package engine

// ============================================================================
// TABLE BUILDER — Filtered view as a render-ready data table
// ============================================================================

// BuildTable renders the filtered view as a TableData: one row per
// employee, one column per normalized or derived dataset column.
// Presentation-only values (age buckets, region codes, computed cost) are
// never part of the dataset and therefore never appear here.
func BuildTable(view View) *TableData {
	ds := view.Dataset()
	if ds == nil {
		return &TableData{Title: "Employees"}
	}

	columns := make([]Column, 0, len(ds.Columns))
	for _, name := range ds.Columns {
		kind := ds.ColumnKind(name)
		align := "left"
		if kind == "number" || kind == "currency" {
			align = "right"
		}
		columns = append(columns, Column{
			Key:   name,
			Label: name,
			Type:  kind,
			Align: align,
		})
	}

	rows := make([][]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		e := view.At(i)
		row := make([]string, 0, len(ds.Columns))
		for _, name := range ds.Columns {
			row = append(row, ds.CellValue(e, name))
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   "Employees",
		Columns: columns,
		Rows:    rows,
	}
}
