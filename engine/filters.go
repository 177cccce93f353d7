package engine

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/magnorodriguesch/RH-DASHBOARD/dataset"
)

// ============================================================================
// FILTERS — Composable predicates over the dataset
// ============================================================================
// Each filter is optional: it applies only when its parameter is set and
// the dataset carries the target column. Filters intersect row sets, so
// the final view is order-independent; the fixed department → level →
// role order exists so selector options can narrow progressively.
// ============================================================================

// All is the selector value meaning "no restriction". An empty string
// means the same thing.
const All = "all"

// Params holds the current filter selections of a session.
type Params struct {
	Department string
	Level      string
	Role       string
	Status     string

	// Inclusive salary bounds. Invalid (null) bound = unbounded.
	SalaryMin decimal.NullDecimal
	SalaryMax decimal.NullDecimal

	// Case-insensitive substring match on the full name.
	NameQuery string
}

// isAll reports whether a selector value imposes no restriction.
func isAll(value string) bool {
	return value == "" || strings.EqualFold(value, All)
}

// Apply evaluates every active filter against the dataset and returns the
// filtered view. Pure: same dataset and params always yield the same row
// set, and the dataset is never mutated.
func Apply(ds *dataset.Dataset, p Params) View {
	return ApplyTo(NewView(ds), p)
}

// ApplyTo narrows an existing view by the given params. Used by selector
// option derivation, where each control filters on top of the previous.
func ApplyTo(view View, p Params) View {
	caps := view.Caps()

	if caps.HasDepartment && !isAll(p.Department) {
		view = view.narrow(func(e *dataset.Employee) bool {
			return e.Department == p.Department
		})
	}
	if caps.HasLevel && !isAll(p.Level) {
		view = view.narrow(func(e *dataset.Employee) bool {
			return e.Level == p.Level
		})
	}
	if caps.HasRole && !isAll(p.Role) {
		view = view.narrow(func(e *dataset.Employee) bool {
			return e.Role == p.Role
		})
	}
	if caps.HasSalary && (p.SalaryMin.Valid || p.SalaryMax.Valid) {
		view = view.narrow(func(e *dataset.Employee) bool {
			if !e.BaseSalary.Valid {
				return false
			}
			s := e.BaseSalary.Decimal
			if p.SalaryMin.Valid && s.LessThan(p.SalaryMin.Decimal) {
				return false
			}
			if p.SalaryMax.Valid && s.GreaterThan(p.SalaryMax.Decimal) {
				return false
			}
			return true
		})
	}
	if !isAll(p.Status) {
		view = view.narrow(func(e *dataset.Employee) bool {
			return string(e.Status) == p.Status
		})
	}
	if q := strings.ToLower(strings.TrimSpace(p.NameQuery)); q != "" {
		view = view.narrow(func(e *dataset.Employee) bool {
			return e.FullName != "" && strings.Contains(strings.ToLower(e.FullName), q)
		})
	}

	return view
}

// ============================================================================
// SELECTOR OPTIONS — progressive narrowing for the filter controls
// ============================================================================
// Department options come from the full table; level options from the
// department-filtered view; role options from the level-filtered view.
// Each returns distinct non-empty values in first-seen row order.
// ============================================================================

// DepartmentOptions returns the selectable departments for a view.
func DepartmentOptions(view View) []string {
	return distinct(view, func(e *dataset.Employee) string { return e.Department })
}

// LevelOptions returns the selectable levels for a view.
func LevelOptions(view View) []string {
	return distinct(view, func(e *dataset.Employee) string { return e.Level })
}

// RoleOptions returns the selectable roles for a view.
func RoleOptions(view View) []string {
	return distinct(view, func(e *dataset.Employee) string { return e.Role })
}

// StatusOptions returns the employment statuses present in a view.
func StatusOptions(view View) []string {
	return distinct(view, func(e *dataset.Employee) string { return string(e.Status) })
}

func distinct(view View, get func(*dataset.Employee) string) []string {
	seen := make(map[string]bool)
	var out []string
	for i := 0; i < view.Len(); i++ {
		val := get(view.At(i))
		if val != "" && !seen[val] {
			seen[val] = true
			out = append(out, val)
		}
	}
	return out
}

// ============================================================================
// SALARY BOUNDS — data-derived clamp range for the salary control
// ============================================================================

// SalaryBounds returns the smallest and largest base salary in the view.
// ok is false when the view has no valid salary values.
func SalaryBounds(view View) (min, max decimal.Decimal, ok bool) {
	for i := 0; i < view.Len(); i++ {
		e := view.At(i)
		if !e.BaseSalary.Valid {
			continue
		}
		s := e.BaseSalary.Decimal
		if !ok {
			min, max, ok = s, s, true
			continue
		}
		if s.LessThan(min) {
			min = s
		}
		if s.GreaterThan(max) {
			max = s
		}
	}
	return min, max, ok
}

// ClampSalary pins the salary bounds of p into the view's data-derived
// range and orders them, so min > max cannot reach Apply. Params without
// salary bounds pass through untouched.
func ClampSalary(p Params, view View) Params {
	if !p.SalaryMin.Valid && !p.SalaryMax.Valid {
		return p
	}
	lo, hi, ok := SalaryBounds(view)
	if !ok {
		p.SalaryMin = decimal.NullDecimal{}
		p.SalaryMax = decimal.NullDecimal{}
		return p
	}
	if p.SalaryMin.Valid {
		p.SalaryMin.Decimal = clampDecimal(p.SalaryMin.Decimal, lo, hi)
	}
	if p.SalaryMax.Valid {
		p.SalaryMax.Decimal = clampDecimal(p.SalaryMax.Decimal, lo, hi)
	}
	if p.SalaryMin.Valid && p.SalaryMax.Valid && p.SalaryMin.Decimal.GreaterThan(p.SalaryMax.Decimal) {
		p.SalaryMin, p.SalaryMax = p.SalaryMax, p.SalaryMin
	}
	return p
}

func clampDecimal(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
