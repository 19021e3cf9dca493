package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"
)

// Sink records task mutation events into Postgres when one is configured.
// A nil Sink (no DB configured) discards everything. Inserts are strictly
// best-effort: a failed insert never breaks the core flow.
type Sink struct {
	db *sql.DB
}

func NewSink(db *sql.DB) *Sink {
	if db == nil {
		return nil
	}
	return &Sink{db: db}
}

// Log inserts one event. Never logs raw task text; caller passes sanitized
// props.
func (s *Sink) Log(ctx context.Context, sessionID, eventName string, props any) {
	if s == nil || s.db == nil || eventName == "" {
		return
	}

	b, err := json.Marshal(props)
	if err != nil {
		// if props can't marshal, don't break core flow
		return
	}

	_, _ = s.db.ExecContext(ctx, `
		INSERT INTO task_events (
			event_name, event_time,
			session_id,
			properties
		)
		VALUES ($1, $2, $3, $4::jsonb)
	`, eventName, time.Now().UTC(), nullIfEmpty(sessionID), string(b))
}

func nullIfEmpty(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
