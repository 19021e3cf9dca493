package analytics

import (
	"fmt"

	"github.com/AbhignaKuchukulla/WorkStream-Monitor/internal/tasks"
)

// Health is the operational snapshot the dashboard header renders.
type Health struct {
	Total       int            `json:"total"`
	Blocked     int            `json:"blocked"`
	AtRisk      int            `json:"at_risk"`
	LongRunning int            `json:"long_running"`
	ByStatus    map[string]int `json:"by_status"`
	ByOwner     map[string]int `json:"by_owner"`
}

// ComputeHealth summarizes an already-derived task batch. Empty input gives
// zero counts and empty maps.
func ComputeHealth(rows []tasks.TaskMetrics) Health {
	h := Health{
		ByStatus: map[string]int{},
		ByOwner:  map[string]int{},
	}

	for _, r := range rows {
		h.Total++
		if r.IsBlocked {
			h.Blocked++
		}
		if r.AtRisk {
			h.AtRisk++
		}
		if r.IsLongRunning {
			h.LongRunning++
		}
		h.ByStatus[string(r.Status)]++
		h.ByOwner[r.Owner]++
	}
	return h
}

// DailySummary renders the four-line status text.
//
// "Completed today" deliberately means Completed with inactivity_days == 0,
// i.e. completed-and-touched-today, not a true completion event.
func DailySummary(rows []tasks.TaskMetrics) string {
	var total, blocked, atRisk, completedToday int
	owners := map[string]struct{}{}

	for _, r := range rows {
		total++
		if r.IsBlocked {
			blocked++
		}
		if r.AtRisk {
			atRisk++
		}
		if r.Status == tasks.StatusCompleted && r.InactivityDays == 0 {
			completedToday++
		}
		owners[r.Owner] = struct{}{}
	}

	return fmt.Sprintf(
		"Total tasks: %d\nBlocked: %d, At-Risk: %d\nCompleted today: %d\nOwners active: %d",
		total, blocked, atRisk, completedToday, len(owners),
	)
}
