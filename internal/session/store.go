package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps sessions in process memory, keyed by opaque cookie tokens.
// Sessions expire after the configured idle TTL; expired entries are dropped
// lazily on access and by the janitor.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates a session store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create allocates a new unauthenticated session and returns its token.
func (s *Store) Create() string {
	token := uuid.NewString()
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = &Session{
		Token:     token,
		CreatedAt: now,
		LastSeen:  now,
	}
	return token
}

// Touch reports whether the token maps to a live session and refreshes its
// idle deadline.
func (s *Store) Touch(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.live(token)
	if sess == nil {
		return false
	}
	sess.LastSeen = s.now()
	return true
}

// Snapshot returns a copy of the session state for rendering. The result
// slice is copied; the blobs themselves are shared because they are never
// mutated after append.
func (s *Store) Snapshot(token string) (View, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok || s.expired(sess) {
		return View{}, false
	}
	results := make([][]byte, len(sess.Results))
	copy(results, sess.Results)
	return View{
		Token:         token,
		Authenticated: sess.Authenticated,
		Username:      sess.Username,
		Results:       results,
	}, true
}

// Login marks the session authenticated under the resolved username.
func (s *Store) Login(token, username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.live(token)
	if sess == nil {
		return false
	}
	sess.Authenticated = true
	sess.Username = username
	sess.LastSeen = s.now()
	return true
}

// Logout clears the auth fields only. Accumulated results stay with the
// session until it expires.
func (s *Store) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.live(token)
	if sess == nil {
		return
	}
	sess.Authenticated = false
	sess.Username = ""
	sess.LastSeen = s.now()
}

// AppendResults appends generated blobs in order and returns the new result
// count.
func (s *Store) AppendResults(token string, blobs [][]byte) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.live(token)
	if sess == nil {
		return 0, false
	}
	sess.Results = append(sess.Results, blobs...)
	sess.LastSeen = s.now()
	return len(sess.Results), true
}

// Result returns the blob at the 1-based display index.
func (s *Store) Result(token string, index int) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok || s.expired(sess) {
		return nil, false
	}
	if index < 1 || index > len(sess.Results) {
		return nil, false
	}
	return sess.Results[index-1], true
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sess := range s.sessions {
		if !s.expired(sess) {
			n++
		}
	}
	return n
}

// StartJanitor prunes expired sessions until ctx is cancelled.
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.prune()
			}
		}
	}()
}

func (s *Store) prune() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, token)
		}
	}
}

// live returns the session for token, dropping it if expired. Callers must
// hold the write lock.
func (s *Store) live(token string) *Session {
	sess, ok := s.sessions[token]
	if !ok {
		return nil
	}
	if s.expired(sess) {
		delete(s.sessions, token)
		return nil
	}
	return sess
}

func (s *Store) expired(sess *Session) bool {
	return s.now().Sub(sess.LastSeen) > s.ttl
}
