package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	at := time.Date(2024, 2, 28, 9, 30, 0, 0, time.UTC)
	c := NewFixed(at)

	assert.True(t, c.Now().Equal(at))
	assert.True(t, c.Now().Equal(c.Now()))
}

func TestSystem(t *testing.T) {
	before := time.Now()
	got := NewSystem().Now()

	assert.False(t, got.Before(before))
}
