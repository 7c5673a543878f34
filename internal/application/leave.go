package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gaasbot/internal/clock"
	"gaasbot/internal/domain"
	"gaasbot/internal/domain/entities"
	"gaasbot/internal/ports/input"
	"gaasbot/internal/ports/output"
)

var _ input.LeaveUseCase = (*LeaveService)(nil)

// LeavePolicy is the static configuration of the leave feature.
type LeavePolicy struct {
	GuildID          string
	PartyChannelID   string
	MemberRoleID     string
	EventMarker      string
	Location         *time.Location
	RecheckOnSubmit  bool
	SessionRetention time.Duration
}

// tracks reports whether a scheduled event is a GaaS event hosted in the party channel.
func (p LeavePolicy) tracks(event entities.ScheduledEvent) bool {
	if p.EventMarker == "" || !strings.Contains(event.Name, p.EventMarker) {
		return false
	}
	if event.ChannelID == "" || event.ChannelID != p.PartyChannelID {
		return false
	}
	return event.GuildID == "" || p.GuildID == "" || event.GuildID == p.GuildID
}

func (p LeavePolicy) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

type LeaveService struct {
	sessions output.SessionRepository
	store    output.LeaveStore
	clock    clock.Clock
	policy   LeavePolicy
}

func NewLeaveService(
	sessions output.SessionRepository,
	store output.LeaveStore,
	clk clock.Clock,
	policy LeavePolicy,
) *LeaveService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &LeaveService{
		sessions: sessions,
		store:    store,
		clock:    clk,
		policy:   policy,
	}
}

// AnnounceEvent opens a leave session for a newly scheduled GaaS event.
// A session already stored for the same event id is replaced.
func (s *LeaveService) AnnounceEvent(ctx context.Context, event entities.ScheduledEvent) (*entities.LeaveSession, error) {
	if !s.policy.tracks(event) {
		return nil, domain.ErrEventNotTracked
	}
	session := &entities.LeaveSession{
		EventID:  event.ID,
		Name:     event.Name,
		StartsAt: event.StartsAt.In(s.policy.location()),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save leave session: %w", err)
	}
	return session, nil
}

// RescheduleEvent moves the deadline of an already announced event. An event
// edited so that it no longer qualifies loses its session.
func (s *LeaveService) RescheduleEvent(ctx context.Context, event entities.ScheduledEvent) (*entities.LeaveSession, error) {
	session, err := s.sessions.FindByEventID(ctx, event.ID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrEventNotTracked
		}
		return nil, err
	}
	if !s.policy.tracks(event) {
		if err := s.sessions.Delete(ctx, event.ID); err != nil {
			return nil, fmt.Errorf("delete leave session: %w", err)
		}
		return nil, domain.ErrEventNotTracked
	}
	session.Name = event.Name
	session.StartsAt = event.StartsAt.In(s.policy.location())
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save leave session: %w", err)
	}
	return session, nil
}

func (s *LeaveService) CancelEvent(ctx context.Context, eventID string) error {
	if err := s.sessions.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete leave session: %w", err)
	}
	return nil
}

// OpenRequest checks that member may still ask for leave for the event.
func (s *LeaveService) OpenRequest(ctx context.Context, eventID string, member entities.Member) (*entities.LeaveSession, error) {
	if !member.HasRole(s.policy.MemberRoleID) {
		return nil, domain.ErrNotGaaSMember
	}
	session, err := s.sessions.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !session.IsOpen(s.clock.Now()) {
		return nil, domain.ErrRequestWindowClosed
	}
	return session, nil
}

// RecordLeave appends the member's reason to the leave file of the event date.
func (s *LeaveService) RecordLeave(ctx context.Context, eventID string, member entities.Member, reason string) (*entities.LeaveRecord, error) {
	if !member.HasRole(s.policy.MemberRoleID) {
		return nil, domain.ErrNotGaaSMember
	}
	session, err := s.sessions.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	if s.policy.RecheckOnSubmit && !session.IsOpen(now) {
		return nil, domain.ErrRequestWindowClosed
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrEmptyReason
	}
	record := &entities.LeaveRecord{
		EventID:    session.EventID,
		Date:       session.Date(),
		Nickname:   member.DisplayName,
		Reason:     reason,
		RecordedAt: now,
	}
	if err := s.store.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("append leave record: %w", err)
	}
	return record, nil
}

// PruneSessions drops sessions whose deadline is older than the retention.
func (s *LeaveService) PruneSessions(ctx context.Context) (int, error) {
	cutoff := s.clock.Now().Add(-s.policy.SessionRetention)
	n, err := s.sessions.DeleteExpired(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune leave sessions: %w", err)
	}
	return n, nil
}
