package engine

import (
	"time"

	"github.com/magnorodriguesch/RH-DASHBOARD/dataset"
)

// ============================================================================
// SESSION — Per-user dashboard state
// ============================================================================
// A Session owns one immutable dataset plus the current filter params.
// Every param change recomputes the view and all dependent payloads from
// the full dataset — no incremental diffing, no shared mutable state
// between sessions.
// ============================================================================

// Session holds the dataset and filter selections of one dashboard user.
type Session struct {
	Data   *dataset.Dataset
	Params Params
}

// NewSession starts a session over a loaded dataset with no filters set.
func NewSession(ds *dataset.Dataset) *Session {
	return &Session{Data: ds}
}

// SetParams replaces the filter selections. Salary bounds are clamped to
// the dataset's range so min > max cannot occur.
func (s *Session) SetParams(p Params) {
	s.Params = ClampSalary(p, NewView(s.Data))
}

// View recomputes the filtered view from the full dataset.
func (s *Session) View() View {
	return Apply(s.Data, s.Params)
}

// Snapshot is the complete dashboard payload for one recomputation
// cycle: the KPI summary plus every chart and the data table. Chart
// fields are nil when their backing column is absent or no rows match.
type Snapshot struct {
	Summary Summary `json:"summary"`

	Movement      *ChartConfig `json:"movement,omitempty"`
	GenderShare   *ChartConfig `json:"genderShare,omitempty"`
	AgeHistogram  *ChartConfig `json:"ageHistogram,omitempty"`
	RoleHeadcount *ChartConfig `json:"roleHeadcount,omitempty"`
	RoleSalary    *ChartConfig `json:"roleSalary,omitempty"`
	Cost          *ChartConfig `json:"cost,omitempty"`
	Regions       *ChartConfig `json:"regions,omitempty"`

	Table *TableData `json:"table"`
}

// topN matches the reference dashboard's "top 10" group charts.
const topN = 10

// Snapshot computes the full dashboard payload for the current params.
func (s *Session) Snapshot() *Snapshot {
	return s.SnapshotAt(time.Now())
}

// SnapshotAt computes the payload with an explicit reference date for
// the year-to-date metrics.
func (s *Session) SnapshotAt(now time.Time) *Snapshot {
	view := s.View()
	caps := view.Caps()

	snap := &Snapshot{
		Summary: SummarizeAt(view, now),
		Table:   BuildTable(view),
	}

	if caps.HasHireDate || caps.HasTerminationDate {
		snap.Movement = BuildMovementChart(MonthlyMovement(view))
	}
	if caps.HasGender {
		snap.GenderShare = BuildGenderChart(snap.Summary.Gender)
	}
	if caps.HasBirthDate && view.Len() > 0 {
		snap.AgeHistogram = BuildAgeChart(AgeHistogram(view))
	}
	if caps.HasRole {
		snap.RoleHeadcount = BuildRoleHeadcountChart(HeadcountByRole(view, topN))
	}
	if caps.HasRole && caps.HasSalary {
		snap.RoleSalary = BuildRoleSalaryChart(MeanSalaryByRole(view, topN))
	}
	if caps.HasLevel && caps.HasCostComponents {
		snap.Cost = BuildCostChart(CostByLevelDepartment(view))
	}
	if caps.HasAddress {
		snap.Regions = BuildRegionChart(RegionBuckets(view))
	}

	return snap
}
