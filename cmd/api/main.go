package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/AbhignaKuchukulla/WorkStream-Monitor/internal/analytics"
	"github.com/AbhignaKuchukulla/WorkStream-Monitor/internal/config"
	"github.com/AbhignaKuchukulla/WorkStream-Monitor/internal/db"
	"github.com/AbhignaKuchukulla/WorkStream-Monitor/internal/events"
	"github.com/AbhignaKuchukulla/WorkStream-Monitor/internal/session"
	"github.com/AbhignaKuchukulla/WorkStream-Monitor/internal/tasks"
)

// eventLogger feeds store mutations into the optional Postgres sink,
// tagging each event with the calling session.
type eventLogger struct {
	sink *events.Sink
}

func (l eventLogger) LogEvent(r *http.Request, eventName string, props any) {
	sid, _ := session.IDFromContext(r.Context())
	l.sink.Log(r.Context(), sid, eventName, props)
}

func main() {
	cfg := config.Load()

	var sink *events.Sink
	if cfg.HasDB() {
		database, err := db.Connect(cfg.ConnString())
		if err != nil {
			log.Fatal("❌ Failed to connect DB:", err)
		}
		defer database.Close()
		sink = events.NewSink(database)
		log.Println("✅ Connected to PostgreSQL, event log enabled")
	} else {
		log.Println("ℹ️ No DB configured, event log disabled")
	}

	secret := []byte(cfg.JWTSecret)
	reg := session.NewRegistry(cfg.ThresholdDays)
	mw := session.New(secret)

	resolve := func(r *http.Request) (string, bool) {
		return session.IDFromContext(r.Context())
	}
	logger := eventLogger{sink: sink}

	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- SESSIONS -----
	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			session.OpenHandler(reg, secret)(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// ----- TASKS API -----
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			mw.Wrap(tasks.ListTasksHandler(reg, resolve))(w, r)
		case http.MethodPost:
			mw.Wrap(tasks.CreateTaskHandler(reg, resolve, logger))(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/tasks/update", mw.Wrap(tasks.UpdateTaskHandler(reg, resolve, logger)))
	mux.HandleFunc("/tasks/reset", mw.Wrap(tasks.ResetTasksHandler(reg, resolve, logger)))
	mux.HandleFunc("/tasks/save", mw.Wrap(tasks.SaveTasksHandler(reg, resolve, cfg.DataPath)))
	mux.HandleFunc("/tasks/load", mw.Wrap(tasks.LoadTasksHandler(reg, resolve, logger, cfg.DataPath)))
	mux.HandleFunc("/tasks/seed", mw.Wrap(tasks.SeedTasksHandler(reg, resolve, logger)))

	// ----- SETTINGS -----
	mux.HandleFunc("/settings/threshold", mw.Wrap(tasks.ThresholdHandler(reg, resolve)))

	// ----- ANALYTICS -----
	mux.HandleFunc("/analytics/health", mw.Wrap(analytics.HealthHandler(reg, resolve)))
	mux.HandleFunc("/analytics/summary", mw.Wrap(analytics.SummaryHandler(reg, resolve)))

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	log.Println("🚀 API server is running on", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, handler))
}
