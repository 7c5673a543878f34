package memory

import (
	"context"
	"sync"
	"time"

	"gaasbot/internal/domain"
	"gaasbot/internal/domain/entities"
	"gaasbot/internal/ports/output"
)

var _ output.SessionRepository = (*SessionRepository)(nil)

// SessionRepository keeps leave sessions in process memory, keyed by event id.
// Sessions are copied on the way in and out.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.LeaveSession
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]entities.LeaveSession)}
}

func (r *SessionRepository) Save(_ context.Context, session *entities.LeaveSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.EventID] = *session
	return nil
}

func (r *SessionRepository) FindByEventID(_ context.Context, eventID string) (*entities.LeaveSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[eventID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &s, nil
}

func (r *SessionRepository) Delete(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, eventID)
	return nil
}

func (r *SessionRepository) DeleteExpired(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if s.Deadline().Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *SessionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}
