package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
)

// Mode selects how credentials are checked.
type Mode string

const (
	// ModeShared accepts one access code for everybody; the username is a
	// free-form label.
	ModeShared Mode = "shared"
	// ModeRoster requires a configured username/password pair.
	ModeRoster Mode = "roster"
)

// fallbackUsername labels shared-mode sessions whose login form left the
// username blank.
const fallbackUsername = "user"

// Store holds the static credentials loaded at startup. It is read-only for
// the lifetime of the process.
type Store struct {
	mode   Mode
	shared string
	users  map[string]string
}

// NewShared builds a store that validates one shared access code.
func NewShared(password string) (*Store, error) {
	if password == "" {
		return nil, errors.New("auth: shared password is required")
	}
	return &Store{mode: ModeShared, shared: password}, nil
}

// NewRoster builds a store that validates per-user credentials.
func NewRoster(users map[string]string) (*Store, error) {
	if len(users) == 0 {
		return nil, errors.New("auth: at least one user is required")
	}
	copied := make(map[string]string, len(users))
	for name, password := range users {
		name = strings.TrimSpace(name)
		if name == "" || password == "" {
			return nil, errors.New("auth: roster entries need a username and a password")
		}
		copied[name] = password
	}
	return &Store{mode: ModeRoster, users: copied}, nil
}

// ParseRoster parses the AUTH_USERS form "alice:pw1,bob:pw2".
func ParseRoster(raw string) (map[string]string, error) {
	users := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, password, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("auth: malformed roster entry %q", entry)
		}
		name = strings.TrimSpace(name)
		if name == "" || password == "" {
			return nil, fmt.Errorf("auth: malformed roster entry %q", entry)
		}
		if _, exists := users[name]; exists {
			return nil, fmt.Errorf("auth: duplicate roster user %q", name)
		}
		users[name] = password
	}
	if len(users) == 0 {
		return nil, errors.New("auth: AUTH_USERS contained no entries")
	}
	return users, nil
}

// Mode reports which credential mode the store runs in.
func (s *Store) Mode() Mode {
	return s.mode
}

// Authenticate validates the supplied credentials and returns the resolved
// username on success. There is no lockout or attempt counting.
func (s *Store) Authenticate(username, password string) (string, bool) {
	username = strings.TrimSpace(username)
	switch s.mode {
	case ModeShared:
		if !equal(password, s.shared) {
			return "", false
		}
		if username == "" {
			username = fallbackUsername
		}
		return username, true
	case ModeRoster:
		expected, ok := s.users[username]
		if !ok || !equal(password, expected) {
			return "", false
		}
		return username, true
	default:
		return "", false
	}
}

func equal(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
