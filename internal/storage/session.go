package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
)

type sessionEntry struct {
	session   entities.QuizSession
	touchedAt time.Time
}

// SessionStorage provides in-memory storage of the current quiz session per chat.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]sessionEntry
	now      func() time.Time
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]sessionEntry),
		now:      time.Now,
	}
}

// Store replaces the session of the given chat.
func (s *SessionStorage) Store(chatID int64, session entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = sessionEntry{session: session, touchedAt: s.now()}
}

// Get retrieves the session of the given chat.
func (s *SessionStorage) Get(chatID int64) (entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[chatID]
	return e.session, ok
}

// Delete removes the session of the given chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle removes sessions not stored since now-ttl and returns how many were removed.
func (s *SessionStorage) EvictIdle(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for chatID, e := range s.sessions {
		if now.Sub(e.touchedAt) > ttl {
			delete(s.sessions, chatID)
			evicted++
		}
	}
	return evicted
}
