package analytics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AbhignaKuchukulla/WorkStream-Monitor/internal/tasks"
)

// GET /analytics/health
func HealthHandler(stores tasks.SessionStores, resolve tasks.SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionStore(w, r, stores, resolve)
		if !ok {
			return
		}

		rows := tasks.WithMetrics(store.ExportAll(), store.Threshold(), time.Now().UTC())

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ComputeHealth(rows))
	}
}

// GET /analytics/summary — plain-text daily summary.
func SummaryHandler(stores tasks.SessionStores, resolve tasks.SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionStore(w, r, stores, resolve)
		if !ok {
			return
		}

		rows := tasks.WithMetrics(store.ExportAll(), store.Threshold(), time.Now().UTC())

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(DailySummary(rows)))
	}
}

func sessionStore(w http.ResponseWriter, r *http.Request, stores tasks.SessionStores, resolve tasks.SessionResolver) (*tasks.Store, bool) {
	sid, ok := resolve(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	return stores.Store(sid), true
}
