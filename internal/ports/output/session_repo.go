package output

import (
	"context"
	"time"

	"gaasbot/internal/domain/entities"
)

// SessionRepository owns the leave sessions, one per announced event.
type SessionRepository interface {
	Save(ctx context.Context, session *entities.LeaveSession) error
	// FindByEventID returns domain.ErrSessionNotFound when nothing is stored.
	FindByEventID(ctx context.Context, eventID string) (*entities.LeaveSession, error)
	Delete(ctx context.Context, eventID string) error
	// DeleteExpired removes sessions whose deadline is before cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}
