package confirm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedClock lets tests move time forward deterministically.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time { return c.t }

func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager(timeout time.Duration) (*Manager, *fixedClock) {
	clock := &fixedClock{t: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	m := NewManager(timeout)
	m.now = clock.now
	return m, clock
}

func TestAdvanceWalksStages(t *testing.T) {
	m, _ := newTestManager(7 * time.Second)

	assert.Equal(t, StageIdle, m.Stage(1))
	assert.Equal(t, StageConfirming, m.Advance(1))
	assert.Equal(t, StageFinalConfirm, m.Advance(1))
	assert.Equal(t, StageFinalConfirm, m.Advance(1))
}

func TestExpiryRevertsToIdle(t *testing.T) {
	m, clock := newTestManager(7 * time.Second)

	m.Advance(1)
	assert.Equal(t, StageConfirming, m.Stage(1))

	clock.advance(8 * time.Second)
	assert.Equal(t, StageIdle, m.Stage(1))

	// An expired flow restarts from the first stage.
	assert.Equal(t, StageConfirming, m.Advance(1))
}

func TestAdvanceReArmsDeadline(t *testing.T) {
	m, clock := newTestManager(7 * time.Second)

	m.Advance(1)
	clock.advance(5 * time.Second)
	m.Advance(1)
	clock.advance(5 * time.Second)

	// 10s since the first stage but only 5s since the second.
	assert.Equal(t, StageFinalConfirm, m.Stage(1))
}

func TestConsumeOnlyFromFinalConfirm(t *testing.T) {
	m, _ := newTestManager(7 * time.Second)

	assert.False(t, m.Consume(1))

	m.Advance(1)
	assert.False(t, m.Consume(1))

	// Consume from Confirming also resets, so the flow restarts.
	assert.Equal(t, StageConfirming, m.Advance(1))
	m.Advance(1)
	assert.True(t, m.Consume(1))

	// Consumed exactly once.
	assert.False(t, m.Consume(1))
	assert.Equal(t, StageIdle, m.Stage(1))
}

func TestConsumeExpiredFinalConfirm(t *testing.T) {
	m, clock := newTestManager(7 * time.Second)

	m.Advance(1)
	m.Advance(1)
	clock.advance(8 * time.Second)

	assert.False(t, m.Consume(1))
}

func TestTargetsAreIndependent(t *testing.T) {
	m, _ := newTestManager(7 * time.Second)

	m.Advance(1)
	m.Advance(1)
	assert.Equal(t, StageFinalConfirm, m.Stage(1))
	assert.Equal(t, StageIdle, m.Stage(2))

	m.Reset(1)
	assert.Equal(t, StageIdle, m.Stage(1))
}

func TestNonPositiveTimeoutUsesDefault(t *testing.T) {
	m := NewManager(0)
	assert.Equal(t, DefaultTimeout, m.timeout)
}
