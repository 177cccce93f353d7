package dataset

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Derived column names, appended to Dataset.Columns at load. They follow
// the reference payroll base's naming so exports round-trip.
const (
	ColumnAge    = "Idade"
	ColumnStatus = "Status"
)

// dateColumnFormat is how date cells render in tables and exports.
const dateColumnFormat = "2006-01-02"

// CellValue renders one employee's value for a canonical column as a
// string. Absent values render as "". Used by the table builder and both
// exporters so every consumer shows the same cell text.
func (d *Dataset) CellValue(e *Employee, column string) string {
	switch column {
	case ColumnAge:
		if e.Age == nil {
			return ""
		}
		return strconv.Itoa(*e.Age)
	case ColumnStatus:
		return string(e.Status)
	}

	key, ok := bindField(column)
	if !ok {
		return e.Extra[column]
	}

	switch key {
	case fieldFullName:
		return e.FullName
	case fieldBirthDate:
		return formatDate(e.BirthDate)
	case fieldHireDate:
		return formatDate(e.HireDate)
	case fieldTerminationDate:
		return formatDate(e.TerminationDate)
	case fieldDepartment:
		return e.Department
	case fieldLevel:
		return e.Level
	case fieldRole:
		return e.Role
	case fieldBaseSalary:
		return formatMoneyCell(e.BaseSalary)
	case fieldTaxes:
		return formatMoneyCell(e.Taxes)
	case fieldBenefits:
		return formatMoneyCell(e.Benefits)
	case fieldTransportAllowance:
		return formatMoneyCell(e.TransportAllowance)
	case fieldMealAllowance:
		return formatMoneyCell(e.MealAllowance)
	case fieldGender:
		if e.Gender == GenderUnknown {
			return ""
		}
		return string(e.Gender)
	case fieldAddress:
		return e.Address
	}
	return ""
}

// ColumnKind classifies a canonical column for presentation alignment.
func (d *Dataset) ColumnKind(column string) string {
	switch column {
	case ColumnAge:
		return "number"
	case ColumnStatus:
		return "text"
	}
	key, ok := bindField(column)
	if !ok {
		return "text"
	}
	switch key {
	case fieldBirthDate, fieldHireDate, fieldTerminationDate:
		return "date"
	case fieldBaseSalary, fieldTaxes, fieldBenefits, fieldTransportAllowance, fieldMealAllowance:
		return "currency"
	default:
		return "text"
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateColumnFormat)
}

func formatMoneyCell(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
