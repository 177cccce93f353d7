package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ============================================================================
// LOADER — Spreadsheet → normalized, immutable Dataset
// ============================================================================
// Pipeline per load:
//   1. Read raw rows (.xlsx via excelize, .csv via encoding/csv)
//   2. Canonicalize column names, bind known fields via alias map
//   3. Coerce dates and money per cell (failures → "no value", not errors)
//   4. Derive age and employment status
//   5. Record column capabilities
//
// Whole-file failures (missing path, unreadable file) abort the load.
// ============================================================================

// Load reads the spreadsheet at path and returns the normalized dataset.
// A non-nil error means no dataset: callers must halt downstream
// processing rather than render a partial dashboard.
func Load(path string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrParse, filepath.Ext(path))
	}
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("dataset load failed")
		return nil, err
	}

	ds, err := build(rows, time.Now())
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("dataset normalization failed")
		return nil, err
	}

	log.Info().
		Str("path", path).
		Int("rows", ds.Len()).
		Int("columns", len(ds.Columns)).
		Bool("salary", ds.Caps.HasSalary).
		Bool("termination", ds.Caps.HasTerminationDate).
		Msg("dataset loaded")

	return ds, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrParse)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return rows, nil
}

// ============================================================================
// TABLE BUILD
// ============================================================================

// build converts raw rows into a normalized Dataset. now is injected so
// derived fields (age, year-to-date metrics downstream) are testable.
func build(rows [][]string, now time.Time) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: table has no header row", ErrParse)
	}

	headers := rows[0]
	columns := make([]string, len(headers))
	bindings := make([]fieldKey, len(headers))
	bound := make([]bool, len(headers))
	for i, h := range headers {
		columns[i] = CanonicalColumn(h)
		bindings[i], bound[i] = bindField(columns[i])
	}

	ds := &Dataset{
		Columns:   columns,
		Employees: make([]Employee, 0, len(rows)-1),
		LoadedAt:  now,
	}

	caps := &ds.Caps
	for i := range headers {
		if !bound[i] {
			continue
		}
		switch bindings[i] {
		case fieldBirthDate:
			caps.HasBirthDate = true
		case fieldHireDate:
			caps.HasHireDate = true
		case fieldTerminationDate:
			caps.HasTerminationDate = true
		case fieldDepartment:
			caps.HasDepartment = true
		case fieldLevel:
			caps.HasLevel = true
		case fieldRole:
			caps.HasRole = true
		case fieldBaseSalary:
			caps.HasSalary = true
			caps.HasCostComponents = true
		case fieldTaxes, fieldBenefits, fieldTransportAllowance, fieldMealAllowance:
			caps.HasCostComponents = true
		case fieldGender:
			caps.HasGender = true
		case fieldAddress:
			caps.HasAddress = true
		}
	}

	// Derived columns ride along in the canonical column list so tables
	// and exports include them.
	if caps.HasBirthDate {
		ds.Columns = append(ds.Columns, ColumnAge)
	}
	ds.Columns = append(ds.Columns, ColumnStatus)

	for _, raw := range rows[1:] {
		emp := Employee{Gender: GenderUnknown, Status: StatusActive}
		for i := range headers {
			var cell string
			if i < len(raw) {
				cell = strings.TrimSpace(raw[i])
			}
			if !bound[i] {
				if cell != "" {
					if emp.Extra == nil {
						emp.Extra = make(map[string]string)
					}
					emp.Extra[columns[i]] = cell
				}
				continue
			}
			setField(&emp, bindings[i], cell)
		}

		// Derived attributes — pure functions of the loaded record.
		if emp.BirthDate != nil {
			age := ageAt(*emp.BirthDate, now)
			emp.Age = &age
		}
		if emp.TerminationDate != nil {
			emp.Status = StatusTerminated
		}

		ds.Employees = append(ds.Employees, emp)
	}

	return ds, nil
}

func setField(emp *Employee, key fieldKey, cell string) {
	switch key {
	case fieldFullName:
		emp.FullName = cell
	case fieldBirthDate:
		emp.BirthDate = parseDate(cell)
	case fieldHireDate:
		emp.HireDate = parseDate(cell)
	case fieldTerminationDate:
		emp.TerminationDate = parseDate(cell)
	case fieldDepartment:
		emp.Department = cell
	case fieldLevel:
		emp.Level = cell
	case fieldRole:
		emp.Role = cell
	case fieldBaseSalary:
		emp.BaseSalary = parseMoney(cell)
	case fieldTaxes:
		emp.Taxes = parseMoney(cell)
	case fieldBenefits:
		emp.Benefits = parseMoney(cell)
	case fieldTransportAllowance:
		emp.TransportAllowance = parseMoney(cell)
	case fieldMealAllowance:
		emp.MealAllowance = parseMoney(cell)
	case fieldGender:
		emp.Gender = NormalizeGender(cell)
	case fieldAddress:
		emp.Address = cell
	}
}

// ============================================================================
// CELL COERCION — per-cell, best effort, never an error
// ============================================================================

// dateLayouts are tried in order. Covers ISO dates, Brazilian day-first
// dates, and the short formats excelize renders for date-styled cells.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"02-01-2006",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/06",
}

// parseDate coerces a cell into a date. Unparseable input → nil.
func parseDate(cell string) *time.Time {
	if cell == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return &t
		}
	}
	// Excel serial date (days since the 1900 epoch).
	if serial, err := strconv.ParseFloat(cell, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return &t
		}
	}
	return nil
}

// parseMoney coerces a cell into a decimal amount. Accepts plain numbers,
// "R$" prefixes, and Brazilian separators ("1.234,56"). Failure → null.
func parseMoney(cell string) decimal.NullDecimal {
	s := strings.TrimSpace(cell)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.NullDecimal{}
	}
	if strings.Contains(s, ",") {
		// Comma-decimal: dots are thousands separators.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// ageAt computes whole years between birth and now as
// floor(days / 365.25).
func ageAt(birth, now time.Time) int {
	days := now.Sub(birth).Hours() / 24
	return int(math.Floor(days / 365.25))
}
