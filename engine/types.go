package engine

import "github.com/shopspring/decimal"

// ============================================================================
// ENGINE TYPES — Render-ready output for the presentation boundary
// ============================================================================
// The engine computes; the consumer renders. Everything here is a plain
// data structure a UI (or the CLI) can draw without touching the dataset.
// ============================================================================

// Summary holds the headline KPI row of the dashboard, computed from a
// filtered view. Formatted fields degrade to "N/A" when the backing
// column is absent or the view is empty; raw fields carry the numbers.
type Summary struct {
	HeadcountTotal  int         `json:"headcountTotal"`
	HeadcountActive int         `json:"headcountActive"`
	HiresThisYear   int         `json:"hiresThisYear"`
	Terminations    int         `json:"terminations"`
	Gender          GenderSplit `json:"gender"`

	AnnualPayroll string `json:"annualPayroll"` // BRL-formatted or "N/A"
	MeanSalary    string `json:"meanSalary"`    // BRL-formatted or "N/A"
	MeanAge       string `json:"meanAge"`       // "31.5" or "N/A"

	AnnualPayrollValue decimal.NullDecimal `json:"annualPayrollValue"`
	MeanSalaryValue    decimal.NullDecimal `json:"meanSalaryValue"`
	MeanAgeValue       *float64            `json:"meanAgeValue,omitempty"`
}

// GenderSplit counts employees per normalized gender value.
type GenderSplit struct {
	Male    int `json:"male"`
	Female  int `json:"female"`
	Unknown int `json:"unknown"`
}

// Group is one grouped/aggregated result: a label, an aggregate value,
// and the member count. Builders turn slices of Group into charts.
type Group struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Count     int     `json:"count"`
	SubGroups []Group `json:"subGroups,omitempty"`

	// memberRows holds view-row indices during grouping passes. Cleared
	// before groups leave the engine.
	memberRows []int
}

// MonthFlow is one year-month of hire and termination counts.
type MonthFlow struct {
	Month        string `json:"month"` // "2006-01"
	Hires        int    `json:"hires"`
	Terminations int    `json:"terminations"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "bar", "hbar", "pie", "area", "sunburst", "map"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render the employee data table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "currency", "date"
	Align string `json:"align"` // "left", "right"
}
