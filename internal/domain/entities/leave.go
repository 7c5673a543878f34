package entities

import (
	"fmt"
	"time"
)

// Bounds of the reason field in the leave form.
const (
	MinReasonLength = 10
	MaxReasonLength = 100
)

// LeaveRecord is one accepted leave request.
type LeaveRecord struct {
	EventID    string
	Date       string
	Nickname   string
	Reason     string
	RecordedAt time.Time
}

// Line renders the record the way it is stored: "<nickname> : <reason>\n".
// The separator is not escaped.
func (r *LeaveRecord) Line() string {
	return fmt.Sprintf("%s : %s\n", r.Nickname, r.Reason)
}
