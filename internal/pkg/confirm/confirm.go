// Package confirm implements the two-stage confirmation flow that guards
// irreversible cascade deletes. Each target id walks Idle -> Confirming ->
// FinalConfirm; a stage left unconfirmed past its deadline falls back to
// Idle so a stale confirmation can never fire a delete after the operator
// has moved on.
package confirm

import (
	"sync"
	"time"
)

// Stage is the confirmation state for one target.
type Stage string

const (
	StageIdle         Stage = "Idle"
	StageConfirming   Stage = "Confirming"
	StageFinalConfirm Stage = "FinalConfirm"
)

// DefaultTimeout bounds how long a pending stage stays armed.
const DefaultTimeout = 7 * time.Second

type pending struct {
	stage    Stage
	deadline time.Time
}

// Manager tracks confirmation stages per target id. Safe for concurrent use.
// Expiry is evaluated lazily against the clock on every access; there are no
// timers to leak.
type Manager struct {
	mu      sync.Mutex
	timeout time.Duration
	now     func() time.Time
	targets map[int64]pending
}

// NewManager creates a Manager with the given stage timeout. A non-positive
// timeout falls back to DefaultTimeout.
func NewManager(timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Manager{
		timeout: timeout,
		now:     time.Now,
		targets: make(map[int64]pending),
	}
}

// clipExpired resets the entry to Idle if its deadline has passed.
// Caller holds the lock.
func (m *Manager) clipExpired(id int64) pending {
	p, ok := m.targets[id]
	if !ok {
		return pending{stage: StageIdle}
	}
	if m.now().After(p.deadline) {
		delete(m.targets, id)
		return pending{stage: StageIdle}
	}
	return p
}

// Stage returns the current stage for a target, honoring expiry.
func (m *Manager) Stage(id int64) Stage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clipExpired(id).stage
}

// Deadline returns when the current stage expires. The zero time means the
// target is idle.
func (m *Manager) Deadline(id int64) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.clipExpired(id)
	if p.stage == StageIdle {
		return time.Time{}
	}
	return p.deadline
}

// Advance moves a target to its next stage, re-arming the deadline, and
// returns the stage reached. An expired stage restarts from Idle, so the
// caller always sees Confirming first. FinalConfirm holds until consumed
// or expired.
func (m *Manager) Advance(id int64) Stage {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.clipExpired(id)
	switch p.stage {
	case StageIdle:
		p.stage = StageConfirming
	case StageConfirming:
		p.stage = StageFinalConfirm
	case StageFinalConfirm:
		// Already fully confirmed; re-arm the deadline only.
	}
	p.deadline = m.now().Add(m.timeout)
	m.targets[id] = p
	return p.stage
}

// Consume checks that the target sits at FinalConfirm within its deadline
// and resets it to Idle. It returns true exactly when the guarded action may
// proceed. The reset happens on every call, so both success and failure of
// the guarded action leave the flow idle.
func (m *Manager) Consume(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.clipExpired(id)
	delete(m.targets, id)
	return p.stage == StageFinalConfirm
}

// Reset returns a target to Idle, dropping any pending confirmation.
func (m *Manager) Reset(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.targets, id)
}
