package clock

import "time"

type manualEntry struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// Manual is a Scheduler driven by virtual time. Nothing runs until Advance
// is called, which makes deferred transitions deterministic in tests.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending []manualEntry
}

var _ Scheduler = (*Manual)(nil)

// NewManual creates a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule queues fn to run once virtual time reaches now+delay.
func (m *Manual) Schedule(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	m.seq++
	m.pending = append(m.pending, manualEntry{at: m.now + delay, seq: m.seq, fn: fn})
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of callbacks that have not run yet.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Advance moves virtual time forward by d, running due callbacks in order
// of due time, ties broken by scheduling order. Callbacks scheduled while
// advancing run too if they fall due before the new time. Returns the
// number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + d
	ran := 0
	for {
		idx := m.nextDue(target)
		if idx < 0 {
			break
		}
		e := m.pending[idx]
		m.pending = append(m.pending[:idx], m.pending[idx+1:]...)
		m.now = e.at
		e.fn()
		ran++
	}
	m.now = target
	return ran
}

func (m *Manual) nextDue(target time.Duration) int {
	best := -1
	for i, e := range m.pending {
		if e.at > target {
			continue
		}
		if best < 0 || e.at < m.pending[best].at ||
			(e.at == m.pending[best].at && e.seq < m.pending[best].seq) {
			best = i
		}
	}
	return best
}
