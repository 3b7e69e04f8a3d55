package session

import "time"

// Session is the per-visitor state held in memory for one browser session.
// Results is append-only; entries carry no metadata beyond their position.
type Session struct {
	Token         string
	Authenticated bool
	Username      string
	Results       [][]byte
	CreatedAt     time.Time
	LastSeen      time.Time
}

// View is an immutable snapshot handed to the rendering layer.
type View struct {
	Token         string
	Authenticated bool
	Username      string
	Results       [][]byte
}
