package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaveSessionWindow(t *testing.T) {
	cst := time.FixedZone("CST", 8*3600)
	s := &LeaveSession{EventID: "1", StartsAt: time.Date(2024, 3, 1, 20, 0, 0, 0, cst)}

	assert.Equal(t, "2024-03-01", s.Date())
	assert.True(t, s.IsOpen(time.Date(2024, 2, 28, 12, 0, 0, 0, cst)))
	assert.True(t, s.IsOpen(s.Deadline()), "the deadline itself is still open")
	assert.False(t, s.IsOpen(s.Deadline().Add(time.Second)))
}

func TestMemberHasRole(t *testing.T) {
	m := Member{UserID: "u", RoleIDs: []string{"10", "20"}}

	assert.True(t, m.HasRole("20"))
	assert.False(t, m.HasRole("30"))
	assert.False(t, m.HasRole(""))
	assert.False(t, Member{}.HasRole("10"))
}

func TestLeaveRecordLine(t *testing.T) {
	r := &LeaveRecord{Nickname: "阿明", Reason: "家裡有事需要處理"}
	assert.Equal(t, "阿明 : 家裡有事需要處理\n", r.Line())
}
