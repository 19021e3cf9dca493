package tasks

import "time"

// TaskMetrics is a task plus its derived columns. Derived values are
// recomputed on every read and never stored.
type TaskMetrics struct {
	Task
	AgeDays        int  `json:"age_days"`
	InactivityDays int  `json:"inactivity_days"`
	AtRisk         bool `json:"at_risk"`
	IsBlocked      bool `json:"is_blocked"`
	IsLongRunning  bool `json:"is_long_running"`
}

// WithMetrics derives the metric columns for every task against one shared
// "now" and threshold snapshot, so no task in the batch sees skewed values.
// The input slice is never mutated.
func WithMetrics(tasks []Task, thresholdDays int, now time.Time) []TaskMetrics {
	if len(tasks) == 0 {
		return []TaskMetrics{}
	}
	if thresholdDays <= 0 {
		thresholdDays = DefaultInactivityThresholdDays
	}

	out := make([]TaskMetrics, 0, len(tasks))
	for _, t := range tasks {
		age := wholeDays(t.CreatedAt, now)
		inactivity := wholeDays(t.LastUpdatedAt, now)

		out = append(out, TaskMetrics{
			Task:           t,
			AgeDays:        age,
			InactivityDays: inactivity,
			AtRisk:         inactivity >= thresholdDays,
			IsBlocked:      t.Status == StatusBlocked,
			IsLongRunning:  t.Status != StatusCompleted && age >= thresholdDays*2,
		})
	}
	return out
}

func wholeDays(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
