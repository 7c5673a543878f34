package domain

import "errors"

// Domain errors.
var (
	ErrEventNotTracked     = errors.New("scheduled event is not a tracked GaaS event")
	ErrSessionNotFound     = errors.New("no leave session for this event")
	ErrNotGaaSMember       = errors.New("member does not hold the GaaS member role")
	ErrRequestWindowClosed = errors.New("leave request window is closed")
	ErrEmptyReason         = errors.New("leave reason is empty")
)

// Code returns a stable identifier for a domain error, or "" when err is not
// one of the sentinels above.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEventNotTracked):
		return "event_not_tracked"
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrRequestWindowClosed):
		// An unknown session is reported to members exactly like a closed window.
		return "request_window_closed"
	case errors.Is(err, ErrNotGaaSMember):
		return "not_gaas_member"
	case errors.Is(err, ErrEmptyReason):
		return "empty_reason"
	default:
		return ""
	}
}
