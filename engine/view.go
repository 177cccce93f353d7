package engine

import "github.com/magnorodriguesch/RH-DASHBOARD/dataset"

// ============================================================================
// VIEW — Zero-Copy Filtered Subset of the Dataset
// ============================================================================
// The engine never copies employee rows. A View is an index list into the
// immutable dataset; filtering narrows the list, never the data. Every
// metric, chart, table, and export reads through a View.
// ============================================================================

// View is a read-only subset of a Dataset's rows. The zero value is an
// empty view. Views are cheap values — pass them around freely.
type View struct {
	ds      *dataset.Dataset
	indices []int
}

// NewView returns a view spanning every row of the dataset.
func NewView(ds *dataset.Dataset) View {
	indices := make([]int, ds.Len())
	for i := range indices {
		indices[i] = i
	}
	return View{ds: ds, indices: indices}
}

// Len returns the number of rows in the view.
func (v View) Len() int { return len(v.indices) }

// At returns the i-th employee of the view. The pointer aliases the
// dataset's backing array; callers must treat it as read-only.
func (v View) At(i int) *dataset.Employee {
	return &v.ds.Employees[v.indices[i]]
}

// Dataset returns the dataset this view reads from.
func (v View) Dataset() *dataset.Dataset { return v.ds }

// Caps returns the dataset's column capabilities (empty when the view has
// no backing dataset).
func (v View) Caps() dataset.Capabilities {
	if v.ds == nil {
		return dataset.Capabilities{}
	}
	return v.ds.Caps
}

// narrow returns a sub-view holding only rows the predicate keeps.
// Indices stay absolute into the dataset, so chained narrows never stack
// indirection.
func (v View) narrow(keep func(*dataset.Employee) bool) View {
	kept := make([]int, 0, len(v.indices))
	for _, idx := range v.indices {
		if keep(&v.ds.Employees[idx]) {
			kept = append(kept, idx)
		}
	}
	return View{ds: v.ds, indices: kept}
}
