package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/AbhignaKuchukulla/WorkStream-Monitor/internal/tasks"
)

// Registry maps session ids to their stores. Each browser session gets its
// own task store, created empty on first access.
type Registry struct {
	mu               sync.Mutex
	stores           map[string]*tasks.Store
	defaultThreshold int
}

func NewRegistry(defaultThresholdDays int) *Registry {
	return &Registry{
		stores:           make(map[string]*tasks.Store),
		defaultThreshold: defaultThresholdDays,
	}
}

// Open mints a fresh session id.
func (r *Registry) Open() string {
	return uuid.NewString()
}

// Store returns the session's store, creating it lazily.
func (r *Registry) Store(sessionID string) *tasks.Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stores[sessionID]
	if !ok {
		s = tasks.NewStore()
		if r.defaultThreshold > 0 {
			_ = s.SetThreshold(r.defaultThreshold)
		}
		r.stores[sessionID] = s
	}
	return s
}
