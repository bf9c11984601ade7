package session

import (
	"context"
	"sync"

	"github.com/FADHEEL1234/Online-Medical/models"
)

// MemoryStore is the process-local fallback used when Redis is not
// configured, and by tests. Sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.Session)}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return models.Anonymous(), nil
	}
	return sess, nil
}

func (s *MemoryStore) Set(_ context.Context, sid string, sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = sess
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
