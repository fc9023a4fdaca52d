// Package auth provides session management and password hashing for the
// media server's access gate.
package auth

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrSessionNotFound is returned when a session is not found in the store.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when trying to access an expired session.
	ErrSessionExpired = errors.New("session expired")
)

// Session represents an authenticated user session, created after a
// successful login and looked up on every gated request.
type Session struct {
	// Token is the opaque session identifier carried in the cookie.
	Token string

	// UserID is the authenticated user's database identifier.
	UserID uint

	// Username is the authenticated user's username.
	Username string

	// CreatedAt is when the session was created.
	CreatedAt time.Time

	// ExpiresAt is when the session expires.
	ExpiresAt time.Time
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SessionStore maps opaque tokens to authenticated users.
type SessionStore interface {
	Create(userID uint, username string) *Session
	Get(token string) (*Session, error)
	Delete(token string)
	DeleteForUser(userID uint)
}

// MemorySessionStore is an in-memory SessionStore guarded by a RWMutex.
// Expired sessions are dropped lazily on lookup.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewMemorySessionStore creates a session store with the given TTL.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create registers a new session for the user and returns it.
func (s *MemorySessionStore) Create(userID uint, username string) *Session {
	now := time.Now()
	session := &Session{
		Token:     NewToken(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// Get returns the session for a token, or ErrSessionNotFound /
// ErrSessionExpired.
func (s *MemorySessionStore) Get(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired() {
		s.Delete(token)
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Delete removes a session by token.
func (s *MemorySessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// DeleteForUser removes every session belonging to a user. Called on
// account deletion so stale cookies cannot outlive the account.
func (s *MemorySessionStore) DeleteForUser(userID uint) {
	s.mu.Lock()
	for token, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
}
