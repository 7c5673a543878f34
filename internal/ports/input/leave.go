package input

import (
	"context"

	"gaasbot/internal/domain/entities"
)

type LeaveUseCase interface {
	AnnounceEvent(ctx context.Context, event entities.ScheduledEvent) (*entities.LeaveSession, error)
	RescheduleEvent(ctx context.Context, event entities.ScheduledEvent) (*entities.LeaveSession, error)
	CancelEvent(ctx context.Context, eventID string) error
	OpenRequest(ctx context.Context, eventID string, member entities.Member) (*entities.LeaveSession, error)
	RecordLeave(ctx context.Context, eventID string, member entities.Member, reason string) (*entities.LeaveRecord, error)
	PruneSessions(ctx context.Context) (int, error)
}
