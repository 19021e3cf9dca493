package analytics

import (
	"testing"
	"time"

	"github.com/AbhignaKuchukulla/WorkStream-Monitor/internal/tasks"
)

func metricRow(owner string, status tasks.Status, inactivityDays int, blocked, atRisk, longRunning bool) tasks.TaskMetrics {
	return tasks.TaskMetrics{
		Task: tasks.Task{
			ID:     "id",
			Title:  "t",
			Owner:  owner,
			Status: status,
		},
		InactivityDays: inactivityDays,
		AtRisk:         atRisk,
		IsBlocked:      blocked,
		IsLongRunning:  longRunning,
	}
}

func TestComputeHealth_Empty(t *testing.T) {
	h := ComputeHealth(nil)

	if h.Total != 0 || h.Blocked != 0 || h.AtRisk != 0 || h.LongRunning != 0 {
		t.Fatalf("ComputeHealth(nil) counts = %+v, want zeros", h)
	}
	if h.ByStatus == nil || len(h.ByStatus) != 0 {
		t.Fatalf("ByStatus = %v, want empty map", h.ByStatus)
	}
	if h.ByOwner == nil || len(h.ByOwner) != 0 {
		t.Fatalf("ByOwner = %v, want empty map", h.ByOwner)
	}
}

func TestComputeHealth_Counts(t *testing.T) {
	rows := []tasks.TaskMetrics{
		metricRow("alice", tasks.StatusBlocked, 5, true, true, true),
		metricRow("alice", tasks.StatusInProgress, 0, false, false, false),
		metricRow("bob", tasks.StatusInProgress, 4, false, true, false),
	}

	h := ComputeHealth(rows)

	if h.Total != 3 {
		t.Fatalf("Total = %d, want 3", h.Total)
	}
	if h.Blocked != 1 || h.AtRisk != 2 || h.LongRunning != 1 {
		t.Fatalf("counts = blocked %d, at_risk %d, long_running %d", h.Blocked, h.AtRisk, h.LongRunning)
	}
	if h.ByStatus["In Progress"] != 2 || h.ByStatus["Blocked"] != 1 {
		t.Fatalf("ByStatus = %v", h.ByStatus)
	}
	if h.ByOwner["alice"] != 2 || h.ByOwner["bob"] != 1 {
		t.Fatalf("ByOwner = %v", h.ByOwner)
	}
}

func TestDailySummary_Empty(t *testing.T) {
	got := DailySummary(nil)
	want := "Total tasks: 0\nBlocked: 0, At-Risk: 0\nCompleted today: 0\nOwners active: 0"
	if got != want {
		t.Fatalf("DailySummary(nil) = %q, want %q", got, want)
	}
}

func TestDailySummary_Counts(t *testing.T) {
	rows := []tasks.TaskMetrics{
		metricRow("alice", tasks.StatusCompleted, 0, false, false, false),
		// completed days ago and untouched since: not "completed today"
		metricRow("alice", tasks.StatusCompleted, 4, false, true, false),
		metricRow("bob", tasks.StatusBlocked, 1, true, false, false),
	}

	got := DailySummary(rows)
	want := "Total tasks: 3\nBlocked: 1, At-Risk: 1\nCompleted today: 1\nOwners active: 2"
	if got != want {
		t.Fatalf("DailySummary() = %q, want %q", got, want)
	}
}

func TestDailySummary_EndToEnd(t *testing.T) {
	// derive first, then summarize: the two layers agree on semantics
	now := time.Now().UTC()
	in := []tasks.Task{
		{ID: "1", Title: "a", Owner: "alice", Status: tasks.StatusCompleted, CreatedAt: now, LastUpdatedAt: now},
		{ID: "2", Title: "b", Owner: "bob", Status: tasks.StatusBlocked, CreatedAt: now.Add(-10 * 24 * time.Hour), LastUpdatedAt: now.Add(-5 * 24 * time.Hour)},
	}

	got := DailySummary(tasks.WithMetrics(in, 3, now))
	want := "Total tasks: 2\nBlocked: 1, At-Risk: 1\nCompleted today: 1\nOwners active: 2"
	if got != want {
		t.Fatalf("DailySummary() = %q, want %q", got, want)
	}
}
