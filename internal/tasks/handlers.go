package tasks

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// SessionStores resolves the calling session's store. Implemented by the
// session registry; handlers only need this one method.
type SessionStores interface {
	Store(sessionID string) *Store
}

// EventLogger is the optional analytics sink.
type EventLogger interface {
	LogEvent(r *http.Request, eventName string, props any)
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Status      string `json:"status"`
}

type UpdateTaskRequest struct {
	TaskID      string  `json:"task_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Owner       *string `json:"owner"`
	Status      *string `json:"status"`
}

type ThresholdRequest struct {
	Days int `json:"days"`
}

type PathRequest struct {
	Path string `json:"path"`
}

// -------------------------------
// HANDLERS
// -------------------------------

// GET /tasks — snapshot with derived metrics.
func ListTasksHandler(stores SessionStores, resolve SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := storeFor(w, r, stores, resolve)
		if !ok {
			return
		}

		rows := WithMetrics(store.ExportAll(), store.Threshold(), time.Now().UTC())

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rows)
	}
}

// POST /tasks
func CreateTaskHandler(stores SessionStores, resolve SessionResolver, events EventLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := storeFor(w, r, stores, resolve)
		if !ok {
			return
		}

		var req CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		task, err := store.Create(req.Title, req.Description, req.Owner, Status(req.Status))
		if err != nil {
			writeTaskError(w, err)
			return
		}

		if events != nil {
			events.LogEvent(r, "task_created", map[string]any{
				"task_id": task.ID,
				"status":  string(task.Status),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(task)
	}
}

// POST /tasks/update — task_id comes in the body, only supplied fields change.
func UpdateTaskHandler(stores SessionStores, resolve SessionResolver, events EventLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := storeFor(w, r, stores, resolve)
		if !ok {
			return
		}

		var req UpdateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.TaskID == "" {
			http.Error(w, "task_id required", http.StatusBadRequest)
			return
		}

		task, err := store.Update(req.TaskID, UpdateRequest{
			Title:       req.Title,
			Description: req.Description,
			Owner:       req.Owner,
			Status:      req.Status,
		})
		if err != nil {
			writeTaskError(w, err)
			return
		}

		if events != nil {
			events.LogEvent(r, "task_updated", map[string]any{
				"task_id": task.ID,
				"status":  string(task.Status),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(task)
	}
}

// POST /tasks/reset
func ResetTasksHandler(stores SessionStores, resolve SessionResolver, events EventLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := storeFor(w, r, stores, resolve)
		if !ok {
			return
		}

		store.ResetAll()

		if events != nil {
			events.LogEvent(r, "tasks_reset", nil)
		}

		writeOK(w)
	}
}

// GET|POST /settings/threshold
func ThresholdHandler(stores SessionStores, resolve SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := storeFor(w, r, stores, resolve)
		if !ok {
			return
		}

		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]int{
				"inactivity_threshold_days": store.Threshold(),
			})
		case http.MethodPost:
			var req ThresholdRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			if err := store.SetThreshold(req.Days); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			writeOK(w)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// POST /tasks/save — persist snapshot to CSV; in-memory state untouched
// either way.
func SaveTasksHandler(stores SessionStores, resolve SessionResolver, defaultPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := storeFor(w, r, stores, resolve)
		if !ok {
			return
		}

		path := pathFromBody(r, defaultPath)
		if err := SaveCSV(store.ExportAll(), path); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeOK(w)
	}
}

// POST /tasks/load — replace the collection from CSV. A failed read leaves
// the store as it was.
func LoadTasksHandler(stores SessionStores, resolve SessionResolver, events EventLogger, defaultPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := storeFor(w, r, stores, resolve)
		if !ok {
			return
		}

		path := pathFromBody(r, defaultPath)
		rows, err := LoadCSV(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		store.LoadBulk(rows)

		if events != nil {
			events.LogEvent(r, "tasks_loaded", map[string]any{"count": len(rows)})
		}

		writeOK(w)
	}
}

// POST /tasks/seed — replace the collection with the demo set.
func SeedTasksHandler(stores SessionStores, resolve SessionResolver, events EventLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := storeFor(w, r, stores, resolve)
		if !ok {
			return
		}

		demo := DemoTasks(time.Now().UTC())
		store.LoadBulk(demo)

		if events != nil {
			events.LogEvent(r, "tasks_seeded", map[string]any{"count": len(demo)})
		}

		writeOK(w)
	}
}

// -------------------------------
// helpers
// -------------------------------

// SessionResolver extracts the session id the middleware put on the request
// context.
type SessionResolver func(r *http.Request) (string, bool)

func storeFor(w http.ResponseWriter, r *http.Request, stores SessionStores, resolve SessionResolver) (*Store, bool) {
	sid, ok := resolve(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	return stores.Store(sid), true
}

func pathFromBody(r *http.Request, defaultPath string) string {
	var req PathRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Path != "" {
		return req.Path
	}
	return defaultPath
}

func writeTaskError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "Task not found.", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}
