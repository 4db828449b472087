package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	c := RealClock{}

	before := time.Now()
	got := c.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixed_Now(t *testing.T) {
	instant := time.Date(2025, 6, 15, 10, 30, 45, 0, time.UTC)
	c := Fixed{Instant: instant}

	assert.Equal(t, instant, c.Now())
	assert.Equal(t, instant, c.Now(), "repeated calls return the same instant")
}
