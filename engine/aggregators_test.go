package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magnorodriguesch/RH-DASHBOARD/dataset"
)

// ============================================================================
// AGGREGATOR TESTS
// ============================================================================

func TestAgeHistogramFixedBuckets(t *testing.T) {
	ds := &dataset.Dataset{
		Employees: []dataset.Employee{
			{FullName: "a", Age: intPtr(17)},
			{FullName: "b", Age: intPtr(20)},
			{FullName: "c", Age: intPtr(40)},
			{FullName: "d", Age: intPtr(70)},
			{FullName: "e"}, // no age — skipped
		},
		Caps: dataset.Capabilities{HasBirthDate: true},
	}

	buckets := AgeHistogram(NewView(ds))
	want := map[string]int{
		"0-18": 1, "19-25": 1, "26-35": 0, "36-45": 1,
		"46-55": 0, "56-65": 0, "65+": 1,
	}
	if len(buckets) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(buckets))
	}
	for _, b := range buckets {
		if b.Count != want[b.Label] {
			t.Fatalf("bucket %s: expected %d, got %d", b.Label, want[b.Label], b.Count)
		}
	}
}

func TestHeadcountByRoleTopN(t *testing.T) {
	ds := testDataset()
	ds.Employees = append(ds.Employees, dataset.Employee{
		FullName: "Dora Lima", Role: "Analista", Department: "Ops",
	})

	groups := HeadcountByRole(NewView(ds), 2)
	if len(groups) != 2 {
		t.Fatalf("expected top 2 roles, got %d", len(groups))
	}
	if groups[0].Label != "Analista" || groups[0].Count != 2 {
		t.Fatalf("expected Analista×2 first, got %s×%d", groups[0].Label, groups[0].Count)
	}
}

func TestMeanSalaryByRole(t *testing.T) {
	ds := testDataset()
	groups := MeanSalaryByRole(NewView(ds), 0)

	if len(groups) != 3 {
		t.Fatalf("expected 3 roles, got %d", len(groups))
	}
	if groups[0].Label != "Gerente" || groups[0].Value != 7000 {
		t.Fatalf("expected Gerente at 7000 first, got %s at %v", groups[0].Label, groups[0].Value)
	}

	// Roles whose every salary is null are omitted.
	ds.Employees[0].BaseSalary = decimal.NullDecimal{}
	groups = MeanSalaryByRole(NewView(ds), 0)
	for _, g := range groups {
		if g.Label == "Analista" {
			t.Fatal("Analista has no valid salary and must be omitted")
		}
	}
}

func TestMonthlyMovement(t *testing.T) {
	ds := testDataset()
	flows := MonthlyMovement(NewView(ds))

	if len(flows) != 4 {
		t.Fatalf("expected 4 months, got %d: %v", len(flows), flows)
	}
	// Chronological order.
	if flows[0].Month != "2018-07" || flows[0].Hires != 1 {
		t.Fatalf("unexpected first month: %+v", flows[0])
	}
	if flows[len(flows)-1].Month != "2026-03" {
		t.Fatalf("unexpected last month: %+v", flows[len(flows)-1])
	}
	for _, f := range flows {
		if f.Month == "2024-11" && f.Terminations != 1 {
			t.Fatalf("expected 1 termination in 2024-11, got %d", f.Terminations)
		}
	}
}

func TestRegionOf(t *testing.T) {
	cases := map[string]string{
		"Rua A, 10 - São Paulo - SP":      "SP",
		"Av. B, 20 - Rio de Janeiro - RJ": "RJ",
		"Praça C - Belo Horizonte - MG,":  "MG",
		"Somewhere abroad":                RegionOther,
		"Rua D - Cidade - ZZ":             RegionOther, // not a canonical state
		"":                                RegionOther,
	}
	for in, want := range cases {
		if got := RegionOf(in); got != want {
			t.Fatalf("RegionOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRegionBuckets(t *testing.T) {
	ds := testDataset()
	groups := RegionBuckets(NewView(ds))

	counts := map[string]int{}
	for _, g := range groups {
		counts[g.Label] = g.Count
	}
	if counts["SP"] != 1 || counts["RJ"] != 1 || counts[RegionOther] != 1 {
		t.Fatalf("unexpected region counts: %v", counts)
	}
}

func TestCostByLevelDepartment(t *testing.T) {
	ds := testDataset()
	groups := CostByLevelDepartment(NewView(ds))

	if len(groups) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(groups))
	}
	// Senior (Bruno, 7000) is the costliest level.
	if groups[0].Label != "Senior" || groups[0].Value != 7000 {
		t.Fatalf("expected Senior at 7000 first, got %s at %v", groups[0].Label, groups[0].Value)
	}
	if len(groups[0].SubGroups) != 1 || groups[0].SubGroups[0].Label != "Sales" {
		t.Fatalf("expected Sales sub-group, got %+v", groups[0].SubGroups)
	}
}

func TestSnapshotDisablesMissingFeatures(t *testing.T) {
	ds := testDataset()
	ds.Caps.HasAddress = false
	ds.Caps.HasLevel = false

	session := NewSession(ds)
	snap := session.SnapshotAt(time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC))

	if snap.Regions != nil {
		t.Fatal("regions chart must be disabled without an address column")
	}
	if snap.Cost != nil {
		t.Fatal("cost chart must be disabled without a level column")
	}
	if snap.RoleHeadcount == nil || snap.Movement == nil || snap.Table == nil {
		t.Fatal("remaining payloads must still be produced")
	}
}

func TestBuildTableMatchesView(t *testing.T) {
	ds := testDataset()
	view := Apply(ds, Params{Department: "Sales"})
	table := BuildTable(view)

	if len(table.Columns) != len(ds.Columns) {
		t.Fatalf("expected %d columns, got %d", len(ds.Columns), len(table.Columns))
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0][0] != "Ana Silva" {
		t.Fatalf("unexpected first cell: %q", table.Rows[0][0])
	}
}

func TestMovementChartEmpty(t *testing.T) {
	if BuildMovementChart(nil) != nil {
		t.Fatal("expected nil chart for no flows")
	}
}
