package tasks

import (
	"time"

	"github.com/google/uuid"
)

// DemoTasks returns the small deterministic demo set used for seeding a
// session. Every task is stamped with the given time.
func DemoTasks(now time.Time) []Task {
	demo := []struct {
		title, description, owner string
		status                    Status
	}{
		{"Implement auth stub", "Placeholder for future auth integration", "Alice", StatusPlanned},
		{"Refactor data layer", "Separate persistence adapter", "Bob", StatusInProgress},
		{"Fix flaky tests", "Stabilize CI failures", "Carol", StatusBlocked},
		{"Improve dashboards", "Add filters and summaries", "Dana", StatusInProgress},
		{"Ship v1", "Cut scope and release", "Eve", StatusCompleted},
	}

	out := make([]Task, 0, len(demo))
	for _, d := range demo {
		out = append(out, Task{
			ID:            uuid.NewString(),
			Title:         d.title,
			Description:   d.description,
			Owner:         d.owner,
			Status:        d.status,
			CreatedAt:     now,
			LastUpdatedAt: now,
		})
	}
	return out
}
