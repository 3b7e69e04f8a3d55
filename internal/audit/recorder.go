package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Event kinds recorded by the studio.
const (
	KindLogin    = "login"
	KindLogout   = "logout"
	KindGenerate = "generate"
)

// Execer is the subset of pgxpool.Pool the recorder needs.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Event is one audit row. Detail carries a short free-text note (error
// message, result count) and is never parsed.
type Event struct {
	Kind      string
	Username  string
	SessionID string
	Success   bool
	Detail    string
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS usage_events (
    id          UUID PRIMARY KEY,
    kind        TEXT NOT NULL,
    username    TEXT NOT NULL DEFAULT '',
    session_id  TEXT NOT NULL DEFAULT '',
    success     BOOLEAN NOT NULL,
    detail      TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const insertEventSQL = `
INSERT INTO usage_events (id, kind, username, session_id, success, detail)
VALUES ($1, $2, $3, $4, $5, $6)`

// Recorder writes usage events to Postgres. A nil Recorder is valid and
// drops every event, so callers never have to branch on whether auditing is
// configured.
type Recorder struct {
	db     Execer
	logger zerolog.Logger
}

// NewRecorder ensures the usage_events table exists and returns a recorder.
// A nil db yields a nil recorder without error.
func NewRecorder(ctx context.Context, db Execer, logger zerolog.Logger) (*Recorder, error) {
	if db == nil {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if _, err := db.Exec(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("audit: ensure usage_events table: %w", err)
	}
	return &Recorder{db: db, logger: logger}, nil
}

// Record inserts one event. Failures are logged and swallowed; auditing must
// never fail a user interaction.
func (r *Recorder) Record(ctx context.Context, event Event) {
	if r == nil || r.db == nil {
		return
	}
	_, err := r.db.Exec(ctx, insertEventSQL,
		uuid.New(), event.Kind, event.Username, event.SessionID, event.Success, event.Detail)
	if err != nil {
		r.logger.Error().Err(err).Str("kind", event.Kind).Msg("record usage event failed")
	}
}
