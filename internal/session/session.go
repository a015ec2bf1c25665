// Package session implements the process-wide session store the
// authentication collaborator consults on every request. Lifecycle is
// bound to process uptime: there is no persistence across restarts.
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Session is one active login.
type Session struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

// Store is the concurrent username -> session mapping. The zero value
// is not usable; construct with New.
type Store struct {
	mu       sync.RWMutex
	byUser   map[string]*Session
	clock    func() time.Time
	monotime func() int64
}

// New constructs an empty session store.
func New() *Store {
	start := time.Now()
	return &Store{
		byUser: make(map[string]*Session),
		clock:  time.Now,
		monotime: func() int64 {
			return time.Since(start).Nanoseconds()
		},
	}
}

// Login returns the active session for username, creating one if none
// exists. A login against an already-active session returns the
// existing identifier rather than allocating a new one.
func (s *Store) Login(username string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byUser[username]; ok {
		return existing
	}

	sess := &Session{
		ID:        s.newSessionID(username),
		Username:  username,
		CreatedAt: s.clock(),
	}
	s.byUser[username] = sess
	return sess
}

// Logout removes username's active session, if any.
func (s *Store) Logout(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, username)
}

// Lookup returns username's active session and whether one exists.
func (s *Store) Lookup(username string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.byUser[username]
	return sess, ok
}

// newSessionID derives a session identifier from
// SHA-256(username || wallclock-millis || monotonic-nanos), hex
// encoded. Must be called with the store lock held.
func (s *Store) newSessionID(username string) string {
	wallMillis := s.clock().UnixMilli()
	mono := s.monotime()
	payload := fmt.Sprintf("%s%s%s", username, strconv.FormatInt(wallMillis, 10), strconv.FormatInt(mono, 10))
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
