package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magnorodriguesch/RH-DASHBOARD/dataset"
)

// ============================================================================
// METRICS — Headline KPIs of the dashboard
// ============================================================================
// Pure, stateless functions of the filtered view. Every metric degrades
// gracefully: zero rows or a missing column yields zero counts and "N/A"
// formatted values, never a panic.
// ============================================================================

// NA is the formatted value for metrics whose backing column is missing
// or whose view is empty.
const NA = "N/A"

// Summarize computes the KPI summary for a view, with "this year"
// anchored to the current date.
func Summarize(view View) Summary {
	return SummarizeAt(view, time.Now())
}

// SummarizeAt computes the KPI summary with an explicit reference date.
func SummarizeAt(view View, now time.Time) Summary {
	caps := view.Caps()
	s := Summary{
		HeadcountTotal: view.Len(),
		AnnualPayroll:  NA,
		MeanSalary:     NA,
		MeanAge:        NA,
	}

	var (
		salarySum   decimal.Decimal
		salaryCount int
		ageSum      int
		ageCount    int
	)

	for i := 0; i < view.Len(); i++ {
		e := view.At(i)

		switch e.Status {
		case dataset.StatusActive:
			s.HeadcountActive++
		case dataset.StatusTerminated:
			s.Terminations++
		}

		if e.HireDate != nil && e.HireDate.Year() == now.Year() {
			s.HiresThisYear++
		}

		switch e.Gender {
		case dataset.GenderMale:
			s.Gender.Male++
		case dataset.GenderFemale:
			s.Gender.Female++
		default:
			s.Gender.Unknown++
		}

		if e.BaseSalary.Valid {
			salarySum = salarySum.Add(e.BaseSalary.Decimal)
			salaryCount++
		}
		if e.Age != nil {
			ageSum += *e.Age
			ageCount++
		}
	}

	if caps.HasSalary {
		payroll := salarySum.Mul(decimal.NewFromInt(12))
		s.AnnualPayrollValue = decimal.NullDecimal{Decimal: payroll, Valid: true}
		s.AnnualPayroll = FormatBRL(payroll)

		if salaryCount > 0 {
			mean := salarySum.Div(decimal.NewFromInt(int64(salaryCount)))
			s.MeanSalaryValue = decimal.NullDecimal{Decimal: mean, Valid: true}
			s.MeanSalary = FormatBRL(mean)
		}
	}

	if caps.HasBirthDate && ageCount > 0 {
		mean := float64(ageSum) / float64(ageCount)
		s.MeanAgeValue = &mean
		s.MeanAge = fmt.Sprintf("%.1f", mean)
	}

	return s
}

// AnnualPayroll returns 12 × the sum of base salaries over the view.
// ok is false when the dataset has no salary column.
func AnnualPayroll(view View) (decimal.Decimal, bool) {
	if !view.Caps().HasSalary {
		return decimal.Zero, false
	}
	total := decimal.Zero
	for i := 0; i < view.Len(); i++ {
		if e := view.At(i); e.BaseSalary.Valid {
			total = total.Add(e.BaseSalary.Decimal)
		}
	}
	return total.Mul(decimal.NewFromInt(12)), true
}
