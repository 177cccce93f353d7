package engine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/magnorodriguesch/RH-DASHBOARD/dataset"
)

// ============================================================================
// AGGREGATORS — Group-by computations over a filtered view
// ============================================================================
// All functions are pure and read through the View — zero row copies.
// An empty view yields empty (never nil-panicking) results everywhere.
// ============================================================================

// HeadcountByRole counts employees per role, largest first, limited to
// the top n roles (n <= 0 means all).
func HeadcountByRole(view View, n int) []Group {
	groups := groupBy(view, func(e *dataset.Employee) string { return e.Role })
	for i := range groups {
		groups[i].Value = float64(groups[i].Count)
		groups[i].memberRows = nil
	}
	sortGroupsByValueDesc(groups)
	return limitGroups(groups, n)
}

// MeanSalaryByRole computes the mean base salary per role, largest first,
// limited to the top n roles. Rows without a salary do not contribute;
// roles with no valid salary at all are omitted.
func MeanSalaryByRole(view View, n int) []Group {
	type acc struct {
		sum   decimal.Decimal
		count int
	}
	sums := make(map[string]*acc)
	var order []string

	for i := 0; i < view.Len(); i++ {
		e := view.At(i)
		if e.Role == "" || !e.BaseSalary.Valid {
			continue
		}
		a, ok := sums[e.Role]
		if !ok {
			a = &acc{}
			sums[e.Role] = a
			order = append(order, e.Role)
		}
		a.sum = a.sum.Add(e.BaseSalary.Decimal)
		a.count++
	}

	groups := make([]Group, 0, len(order))
	for _, role := range order {
		a := sums[role]
		mean := a.sum.Div(decimal.NewFromInt(int64(a.count)))
		groups = append(groups, Group{
			Key:   role,
			Label: role,
			Value: mean.InexactFloat64(),
			Count: a.count,
		})
	}
	sortGroupsByValueDesc(groups)
	return limitGroups(groups, n)
}

// MonthlyMovement counts hires and terminations per year-month,
// chronologically ordered. Rows without the relevant date are skipped.
func MonthlyMovement(view View) []MonthFlow {
	flows := make(map[string]*MonthFlow)
	for i := 0; i < view.Len(); i++ {
		e := view.At(i)
		if e.HireDate != nil {
			monthFlow(flows, e.HireDate.Format("2006-01")).Hires++
		}
		if e.TerminationDate != nil {
			monthFlow(flows, e.TerminationDate.Format("2006-01")).Terminations++
		}
	}

	out := make([]MonthFlow, 0, len(flows))
	for _, f := range flows {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func monthFlow(flows map[string]*MonthFlow, month string) *MonthFlow {
	f, ok := flows[month]
	if !ok {
		f = &MonthFlow{Month: month}
		flows[month] = f
	}
	return f
}

// ============================================================================
// AGE HISTOGRAM — fixed buckets, right edge excluded
// ============================================================================

// ageBucketEdges are half-open bucket boundaries: [0,18), [18,25), …,
// [65,100). ageBucketLabels name them.
var (
	ageBucketEdges  = []int{0, 18, 25, 35, 45, 55, 65, 100}
	ageBucketLabels = []string{"0-18", "19-25", "26-35", "36-45", "46-55", "56-65", "65+"}
)

// AgeHistogram buckets the view's employees by age. Every bucket appears
// in the result, zero-count ones included; rows without an age are
// skipped.
func AgeHistogram(view View) []Group {
	groups := make([]Group, len(ageBucketLabels))
	for i, label := range ageBucketLabels {
		groups[i] = Group{Key: label, Label: label}
	}

	for i := 0; i < view.Len(); i++ {
		e := view.At(i)
		if e.Age == nil {
			continue
		}
		if b, ok := ageBucket(*e.Age); ok {
			groups[b].Count++
			groups[b].Value++
		}
	}
	return groups
}

func ageBucket(age int) (int, bool) {
	for i := 0; i < len(ageBucketEdges)-1; i++ {
		if age >= ageBucketEdges[i] && age < ageBucketEdges[i+1] {
			return i, true
		}
	}
	return 0, false
}

// ============================================================================
// COST BREAKDOWN — total monthly cost by level, then department
// ============================================================================

// CostByLevelDepartment sums the total monthly cost (base salary plus
// available cost components) grouped by level, with a department
// breakdown inside each level. Largest levels first.
func CostByLevelDepartment(view View) []Group {
	levels := groupBy(view, func(e *dataset.Employee) string { return e.Level })

	for li := range levels {
		level := &levels[li]
		subTotals := make(map[string]*Group)
		var subOrder []string

		for _, idx := range level.memberRows {
			e := view.At(idx)
			cost := e.TotalMonthlyCost().InexactFloat64()
			level.Value += cost

			dept := e.Department
			sg, ok := subTotals[dept]
			if !ok {
				sg = &Group{Key: dept, Label: dept}
				subTotals[dept] = sg
				subOrder = append(subOrder, dept)
			}
			sg.Value += cost
			sg.Count++
		}

		level.SubGroups = make([]Group, 0, len(subOrder))
		for _, dept := range subOrder {
			level.SubGroups = append(level.SubGroups, *subTotals[dept])
		}
		sortGroupsByValueDesc(level.SubGroups)
		level.memberRows = nil
	}

	sortGroupsByValueDesc(levels)
	return levels
}

// ============================================================================
// REGION BUCKETS — trailing state code from the address field
// ============================================================================

// regionRe matches a trailing two-letter code: "… - SP" or "… - SP,".
var regionRe = regexp.MustCompile(`-\s(..),?$`)

// brazilStates is the canonical set of two-letter state codes.
var brazilStates = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

// RegionOther is the bucket for addresses without a recognizable state
// code, malformed and international addresses included.
const RegionOther = "Other"

// RegionOf extracts the state code from a free-text address. Anything
// that does not end in a canonical two-letter code maps to RegionOther.
func RegionOf(address string) string {
	m := regionRe.FindStringSubmatch(strings.TrimSpace(address))
	if m == nil {
		return RegionOther
	}
	code := strings.ToUpper(m[1])
	if !brazilStates[code] {
		return RegionOther
	}
	return code
}

// RegionBuckets counts employees per extracted region, largest first.
func RegionBuckets(view View) []Group {
	groups := groupBy(view, func(e *dataset.Employee) string { return RegionOf(e.Address) })
	for i := range groups {
		groups[i].Value = float64(groups[i].Count)
		groups[i].memberRows = nil
	}
	sortGroupsByValueDesc(groups)
	return groups
}

// ============================================================================
// GROUPING PRIMITIVES
// ============================================================================

// groupBy partitions the view by a string key, preserving first-seen
// order. Empty keys are skipped.
func groupBy(view View, key func(*dataset.Employee) string) []Group {
	positions := make(map[string]int)
	var groups []Group

	for i := 0; i < view.Len(); i++ {
		k := key(view.At(i))
		if k == "" {
			continue
		}
		pos, ok := positions[k]
		if !ok {
			pos = len(groups)
			positions[k] = pos
			groups = append(groups, Group{Key: k, Label: k})
		}
		groups[pos].Count++
		groups[pos].memberRows = append(groups[pos].memberRows, i)
	}
	return groups
}

func sortGroupsByValueDesc(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
}

func limitGroups(groups []Group, n int) []Group {
	if n > 0 && len(groups) > n {
		return groups[:n]
	}
	return groups
}
