package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magnorodriguesch/RH-DASHBOARD/dataset"
)

// ============================================================================
// METRIC TESTS
// ============================================================================

var metricsNow = time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

func TestSummarizeHeadcounts(t *testing.T) {
	ds := testDataset()
	s := SummarizeAt(NewView(ds), metricsNow)

	if s.HeadcountTotal != 3 {
		t.Fatalf("expected total 3, got %d", s.HeadcountTotal)
	}
	if s.HeadcountActive != 2 {
		t.Fatalf("expected active 2, got %d", s.HeadcountActive)
	}
	if s.Terminations != 1 {
		t.Fatalf("expected 1 termination, got %d", s.Terminations)
	}
	// Only Ana was hired in the reference year 2026.
	if s.HiresThisYear != 1 {
		t.Fatalf("expected 1 hire this year, got %d", s.HiresThisYear)
	}
	if s.Gender.Male != 1 || s.Gender.Female != 2 || s.Gender.Unknown != 0 {
		t.Fatalf("unexpected gender split: %+v", s.Gender)
	}
}

func TestAnnualPayrollTracksFilteredView(t *testing.T) {
	ds := testDataset()

	full, ok := AnnualPayroll(NewView(ds))
	if !ok || full.String() != "216000" { // (5000+7000+6000) × 12
		t.Fatalf("expected 216000, got %s ok=%v", full, ok)
	}

	// Removing Bruno's row removes exactly his contribution.
	active := Apply(ds, Params{Status: string(dataset.StatusActive)})
	part, ok := AnnualPayroll(active)
	if !ok || part.String() != "132000" { // (5000+6000) × 12
		t.Fatalf("expected 132000, got %s ok=%v", part, ok)
	}
}

func TestSummarizeFormatsCurrencyAndAge(t *testing.T) {
	ds := testDataset()
	s := SummarizeAt(NewView(ds), metricsNow)

	if s.AnnualPayroll != "R$ 216.000,00" {
		t.Fatalf("unexpected payroll format: %q", s.AnnualPayroll)
	}
	if s.MeanSalary != "R$ 6.000,00" {
		t.Fatalf("unexpected mean salary format: %q", s.MeanSalary)
	}
	// Ages 36, 41, 26 → mean 34.3.
	if s.MeanAge != "34.3" {
		t.Fatalf("unexpected mean age: %q", s.MeanAge)
	}
}

func TestSummarizeWithoutSalaryColumn(t *testing.T) {
	ds := testDataset()
	ds.Caps.HasSalary = false

	s := SummarizeAt(NewView(ds), metricsNow)
	if s.AnnualPayroll != NA || s.MeanSalary != NA {
		t.Fatalf("expected N/A money metrics, got %q / %q", s.AnnualPayroll, s.MeanSalary)
	}
	if s.AnnualPayrollValue.Valid || s.MeanSalaryValue.Valid {
		t.Fatal("expected raw money values to be null")
	}

	if _, ok := AnnualPayroll(NewView(ds)); ok {
		t.Fatal("AnnualPayroll must report missing salary column")
	}
}

func TestSummarizeEmptyView(t *testing.T) {
	ds := testDataset()
	empty := Apply(ds, Params{Department: "Legal"})

	s := SummarizeAt(empty, metricsNow)
	if s.HeadcountTotal != 0 || s.HeadcountActive != 0 || s.HiresThisYear != 0 {
		t.Fatalf("expected zero counts, got %+v", s)
	}
	// Salary column exists, so payroll is a formatted zero; mean degrades.
	if s.AnnualPayroll != "R$ 0,00" {
		t.Fatalf("expected zero payroll, got %q", s.AnnualPayroll)
	}
	if s.MeanSalary != NA || s.MeanAge != NA {
		t.Fatalf("expected N/A means, got %q / %q", s.MeanSalary, s.MeanAge)
	}
}

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":          "R$ 0,00",
		"1234.5":     "R$ 1.234,50",
		"1234567.89": "R$ 1.234.567,89",
		"-99.9":      "-R$ 99,90",
	}
	for in, want := range cases {
		if got := FormatBRL(mustDecimal(in)); got != want {
			t.Fatalf("FormatBRL(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1234567); got != "1.234.567" {
		t.Fatalf("FormatCount = %q", got)
	}
	if got := FormatCount(999); got != "999" {
		t.Fatalf("FormatCount = %q", got)
	}
}

func mustDecimal(s string) decimal.Decimal {
	return money(s).Decimal
}
