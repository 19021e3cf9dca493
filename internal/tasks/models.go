package tasks

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPlanned    Status = "Planned"
	StatusInProgress Status = "In Progress"
	StatusBlocked    Status = "Blocked"
	StatusCompleted  Status = "Completed"
)

// ValidStatuses is the full enumeration, in display order. Transitions are
// unconstrained: any status may change to any other.
var ValidStatuses = []Status{StatusPlanned, StatusInProgress, StatusBlocked, StatusCompleted}

const DefaultInactivityThresholdDays = 3

type Task struct {
	ID            string    `json:"task_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Owner         string    `json:"owner"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

func (s Status) Valid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func statusList() string {
	parts := make([]string, 0, len(ValidStatuses))
	for _, s := range ValidStatuses {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

// ValidationError carries every problem found in one call so the client can
// show the full list at once.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "\n")
}

func validateTaskFields(title, owner string, status Status) []string {
	var problems []string
	if strings.TrimSpace(title) == "" {
		problems = append(problems, "Title is required.")
	}
	if strings.TrimSpace(owner) == "" {
		problems = append(problems, "Owner is required.")
	}
	if !status.Valid() {
		problems = append(problems, fmt.Sprintf("Status must be one of: %s", statusList()))
	}
	return problems
}
