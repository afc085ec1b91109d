package survey

import (
	"sync"

	"survey-bot/internal/models"
)

// SessionStore holds every user's current session for the life of the
// process. There is no eviction: a completed session stays in the map
// until the next cycle overwrites it or the process exits.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*models.UserSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*models.UserSession),
	}
}

// Get returns the live session for userID, or nil if none exists.
func (s *SessionStore) Get(userID int64) *models.UserSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

func (s *SessionStore) Put(userID int64, sess *models.UserSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
