package memory

import (
	"context"
	"sync"
	"time"

	"github.com/raasdandiya/checkout/internal/core/domain"
)

// Store keeps wizard sessions in process memory. Good for a single
// instance; use the Redis store when running more than one.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]domain.WizardSession
}

func New() *Store {
	return &Store{sessions: make(map[string]domain.WizardSession)}
}

func (s *Store) Get(_ context.Context, id string) (domain.WizardSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.WizardSession{}, domain.ErrSessionNotFound
	}

	return sess, nil
}

func (s *Store) Save(_ context.Context, session domain.WizardSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session

	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)

	return nil
}

func (s *Store) DeleteExpired(_ context.Context, olderThan time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(olderThan) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed, nil
}
