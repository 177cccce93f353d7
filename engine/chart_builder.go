package engine

// ============================================================================
// CHART BUILDER — Produces ChartConfig payloads for the dashboard
// ============================================================================
// One builder per dashboard chart. Builders return nil when there is
// nothing to plot; the presentation layer hides the panel in that case.
// ============================================================================

// BuildMovementChart renders monthly hires vs terminations as an area
// chart with one series per flow type.
func BuildMovementChart(flows []MonthFlow) *ChartConfig {
	if len(flows) == 0 {
		return nil
	}

	hires := make([]ChartPoint, 0, len(flows))
	terms := make([]ChartPoint, 0, len(flows))
	for _, f := range flows {
		hires = append(hires, ChartPoint{Label: f.Month, Value: float64(f.Hires)})
		terms = append(terms, ChartPoint{Label: f.Month, Value: float64(f.Terminations)})
	}

	return &ChartConfig{
		ChartType: "area",
		Title:     "Hires vs Terminations by Month",
		XAxis:     "Month",
		YAxis:     "People",
		Series: []ChartSeries{
			{Name: "Hires", Data: hires},
			{Name: "Terminations", Data: terms},
		},
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// BuildGenderChart renders the gender split as a pie chart. Unknown is
// included only when present.
func BuildGenderChart(split GenderSplit) *ChartConfig {
	if split.Male == 0 && split.Female == 0 && split.Unknown == 0 {
		return nil
	}

	points := []ChartPoint{
		{Label: "M", Value: float64(split.Male)},
		{Label: "F", Value: float64(split.Female)},
	}
	if split.Unknown > 0 {
		points = append(points, ChartPoint{Label: "unknown", Value: float64(split.Unknown)})
	}

	return &ChartConfig{
		ChartType:  "pie",
		Title:      "Gender Distribution",
		Series:     []ChartSeries{{Name: "Employees", Data: points}},
		ShowLegend: true,
	}
}

// BuildAgeChart renders the age histogram as a bar chart, buckets in
// edge order.
func BuildAgeChart(buckets []Group) *ChartConfig {
	return buildGroupChart(buckets, "bar", "Age Distribution", "Age Range", "Employees")
}

// BuildRoleHeadcountChart renders headcount per role as a bar chart.
func BuildRoleHeadcountChart(groups []Group) *ChartConfig {
	return buildGroupChart(groups, "bar", "Top Roles by Headcount", "Role", "Employees")
}

// BuildRoleSalaryChart renders mean salary per role as a horizontal bar
// chart.
func BuildRoleSalaryChart(groups []Group) *ChartConfig {
	return buildGroupChart(groups, "hbar", "Top Mean Salaries by Role", "Role", "Mean Salary")
}

// BuildCostChart renders the level → department cost breakdown as a
// sunburst: one series per level, one point per department.
func BuildCostChart(groups []Group) *ChartConfig {
	if len(groups) == 0 {
		return nil
	}

	series := make([]ChartSeries, 0, len(groups))
	for _, level := range groups {
		points := make([]ChartPoint, 0, len(level.SubGroups))
		for _, dept := range level.SubGroups {
			points = append(points, ChartPoint{Label: dept.Label, Value: dept.Value})
		}
		if len(points) == 0 {
			points = append(points, ChartPoint{Label: level.Label, Value: level.Value})
		}
		series = append(series, ChartSeries{Name: level.Label, Data: points})
	}

	return &ChartConfig{
		ChartType:  "sunburst",
		Title:      "Monthly Cost by Level and Department",
		Series:     series,
		ShowLegend: true,
	}
}

// BuildRegionChart renders headcount per region for a choropleth map.
func BuildRegionChart(groups []Group) *ChartConfig {
	return buildGroupChart(groups, "map", "Headcount by State", "State", "Employees")
}

func buildGroupChart(groups []Group, chartType, title, xAxis, yAxis string) *ChartConfig {
	if len(groups) == 0 {
		return nil
	}
	points := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, ChartPoint{Label: g.Label, Value: g.Value})
	}
	return &ChartConfig{
		ChartType:  chartType,
		Title:      title,
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     []ChartSeries{{Name: yAxis, Data: points}},
		ShowLegend: chartType != "bar" && chartType != "hbar",
		ShowGrid:   chartType != "pie" && chartType != "map",
	}
}
