// Package peopledash provides the data core of a people-analytics
// dashboard over a tabular employee dataset.
//
// Usage:
//
//	ds, err := dataset.Load("BaseFuncionarios.xlsx")
//	if err != nil { ... }
//
//	view := engine.Apply(ds, engine.Params{Department: "Sales"})
//	summary := engine.Summarize(view)
//	csvBytes, _ := export.CSV(ds, view)
//
// The dataset is loaded and normalized once and treated as immutable for
// the session. Every filter change produces a fresh zero-copy view of the
// dataset, and every metric, chart payload, and export is a pure function
// of that view. Rendering is handled separately by the consumer — this
// module never draws a widget or a chart, it only hands the presentation
// layer render-ready structures.
package peopledash
