package app

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

// SessionStore keeps sessions in memory.
// When the store is full, least recently used session is dropped.
type SessionStore struct {
	sessions *lru.Cache
}

// NewSessionStore creates new SessionStore instance.
func NewSessionStore(size int) (*SessionStore, error) {
	if size <= 0 {
		return nil, errors.New("session store size must be greater than 0")
	}
	sessions, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for sessions: %w", err)
	}

	return &SessionStore{
		sessions: sessions,
	}, nil
}

// Create creates new session and returns it with its id.
func (s *SessionStore) Create() (string, *Session) {
	id := uuid.NewString()
	sess := NewSession()
	s.sessions.Add(id, sess)

	return id, sess
}

// Get returns session with given id.
func (s *SessionStore) Get(id string) (*Session, bool) {
	val, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}

	return val.(*Session), true
}

// Len returns number of stored sessions.
func (s *SessionStore) Len() int {
	return s.sessions.Len()
}
