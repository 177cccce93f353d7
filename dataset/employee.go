package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================================
// EMPLOYEE MODEL — Typed record with explicit optional fields
// ============================================================================
// Every optional source column maps to an explicitly nullable field:
// *time.Time for dates, decimal.NullDecimal for money, "" for free text.
// Column availability is captured once at load in Capabilities — consumers
// check flags, never re-probe the raw table.
// ============================================================================

// Gender is the normalized gender value. Anything that does not trim and
// uppercase to exactly "M" or "F" becomes GenderUnknown.
type Gender string

const (
	GenderMale    Gender = "M"
	GenderFemale  Gender = "F"
	GenderUnknown Gender = "unknown"
)

// Status is the derived employment status.
type Status string

const (
	// StatusActive is the default: no termination date recorded.
	StatusActive Status = "Active"
	// StatusTerminated means a non-null termination date is present.
	StatusTerminated Status = "Terminated"
)

// Employee is one normalized row of the source table plus derived fields.
// Derived fields (Age, Status) are computed once at load and never mutated.
type Employee struct {
	FullName string

	BirthDate       *time.Time
	HireDate        *time.Time
	TerminationDate *time.Time

	Department string
	Level      string
	Role       string
	Address    string

	BaseSalary         decimal.NullDecimal
	Taxes              decimal.NullDecimal
	Benefits           decimal.NullDecimal
	TransportAllowance decimal.NullDecimal
	MealAllowance      decimal.NullDecimal

	Gender Gender

	// Derived at load.
	Age    *int
	Status Status

	// Extra holds source columns with no known binding, keyed by canonical
	// column name. Preserved so exports reproduce the full table.
	Extra map[string]string
}

// TotalMonthlyCost sums the cost components present on the record
// (base salary, taxes, benefits, transport and meal allowances).
func (e Employee) TotalMonthlyCost() decimal.Decimal {
	total := decimal.Zero
	for _, c := range []decimal.NullDecimal{
		e.BaseSalary, e.Taxes, e.Benefits, e.TransportAllowance, e.MealAllowance,
	} {
		if c.Valid {
			total = total.Add(c.Decimal)
		}
	}
	return total
}

// Capabilities records which optional columns the source table carried.
// Computed once at load; each flag gates the dependent filter or metric.
type Capabilities struct {
	HasBirthDate       bool
	HasHireDate        bool
	HasTerminationDate bool
	HasDepartment      bool
	HasLevel           bool
	HasRole            bool
	HasSalary          bool
	HasGender          bool
	HasAddress         bool
	HasCostComponents  bool
}

// Dataset is the normalized employee table. Immutable after Load —
// filtering produces views over it, never mutations of it.
type Dataset struct {
	// Columns lists canonical column names in source order, derived
	// columns (age, status) appended.
	Columns   []string
	Employees []Employee
	Caps      Capabilities
	LoadedAt  time.Time
}

// Len returns the number of rows in the dataset.
func (d *Dataset) Len() int { return len(d.Employees) }
