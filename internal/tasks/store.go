package tasks

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("task not found")
	ErrInvalidThreshold = errors.New("inactivity threshold must be a positive integer")
)

// Store holds one session's tasks plus the inactivity threshold setting.
// Tasks keep insertion order. Safe for concurrent handlers.
type Store struct {
	mu            sync.RWMutex
	tasks         []Task
	thresholdDays int
}

func NewStore() *Store {
	return &Store{thresholdDays: DefaultInactivityThresholdDays}
}

// UpdateRequest carries a partial update; nil means "leave unchanged".
// Status is a plain string here because it arrives unvalidated from the
// client and must be checked against the enumeration.
type UpdateRequest struct {
	Title       *string
	Description *string
	Owner       *string
	Status      *string
}

func (s *Store) Create(title, description, owner string, status Status) (Task, error) {
	if problems := validateTaskFields(title, owner, status); len(problems) > 0 {
		return Task{}, &ValidationError{Problems: problems}
	}

	now := time.Now().UTC()
	task := Task{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(title),
		Description:   strings.TrimSpace(description),
		Owner:         strings.TrimSpace(owner),
		Status:        status,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	return task, nil
}

// Update applies the supplied fields to one task. It validates everything
// before touching the task, so a failed call leaves every field as it was.
func (s *Store) Update(id string, req UpdateRequest) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := -1
	for j := range s.tasks {
		if s.tasks[j].ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return Task{}, ErrNotFound
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return Task{}, &ValidationError{Problems: []string{"Title cannot be empty."}}
	}
	if req.Owner != nil && strings.TrimSpace(*req.Owner) == "" {
		return Task{}, &ValidationError{Problems: []string{"Owner cannot be empty."}}
	}
	if req.Status != nil && !Status(*req.Status).Valid() {
		return Task{}, &ValidationError{Problems: []string{"Status must be one of: " + statusList()}}
	}

	t := &s.tasks[i]
	if req.Title != nil {
		t.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		t.Description = strings.TrimSpace(*req.Description)
	}
	if req.Owner != nil {
		t.Owner = strings.TrimSpace(*req.Owner)
	}
	if req.Status != nil {
		t.Status = Status(*req.Status)
	}
	t.LastUpdatedAt = time.Now().UTC()

	return *t, nil
}

func (s *Store) ResetAll() {
	s.mu.Lock()
	s.tasks = nil
	s.mu.Unlock()
}

func (s *Store) SetThreshold(days int) error {
	if days <= 0 {
		return ErrInvalidThreshold
	}
	s.mu.Lock()
	s.thresholdDays = days
	s.mu.Unlock()
	return nil
}

func (s *Store) Threshold() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.thresholdDays <= 0 {
		return DefaultInactivityThresholdDays
	}
	return s.thresholdDays
}

// LoadBulk replaces the whole collection, preserving row order. Rows arrive
// as-is; the CSV layer has already defaulted missing fields to empty text.
func (s *Store) LoadBulk(rows []Task) {
	copied := make([]Task, len(rows))
	copy(copied, rows)

	s.mu.Lock()
	s.tasks = copied
	s.mu.Unlock()
}

// ExportAll returns a snapshot copy; mutating it does not touch the store.
func (s *Store) ExportAll() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
