package entities

import "time"

// ScheduledEvent is the part of a Discord scheduled event the leave feature reads.
type ScheduledEvent struct {
	ID        string
	GuildID   string
	ChannelID string
	Name      string
	StartsAt  time.Time
}

// LeaveSession tracks the leave request window of one announced event.
type LeaveSession struct {
	EventID  string
	Name     string
	StartsAt time.Time // local time of the event start
}

// Deadline is the last instant at which leave may still be requested.
func (s *LeaveSession) Deadline() time.Time {
	return s.StartsAt
}

// IsOpen reports whether now is not after the deadline.
func (s *LeaveSession) IsOpen(now time.Time) bool {
	return !now.After(s.Deadline())
}

// Date is the calendar date of the event start, formatted YYYY-MM-DD.
func (s *LeaveSession) Date() string {
	return s.StartsAt.Format(time.DateOnly)
}
