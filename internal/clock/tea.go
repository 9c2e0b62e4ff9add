package clock

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// FiredMsg is delivered to the Bubble Tea program when a scheduled
// callback is due. The program hands it back to Tea.Fire.
type FiredMsg struct {
	ID uint64
}

type teaTimer struct {
	id    uint64
	delay time.Duration
}

// Tea is a Scheduler for Bubble Tea programs. Scheduled callbacks are turned
// into tea.Tick commands by Flush and run by Fire from inside Update, so
// they execute on the program's event loop like any other message.
type Tea struct {
	next      uint64
	queued    []teaTimer
	callbacks map[uint64]func()
}

var _ Scheduler = (*Tea)(nil)

// NewTea creates an empty Tea scheduler.
func NewTea() *Tea {
	return &Tea{callbacks: make(map[uint64]func())}
}

func (t *Tea) Schedule(delay time.Duration, fn func()) {
	t.next++
	t.callbacks[t.next] = fn
	t.queued = append(t.queued, teaTimer{id: t.next, delay: delay})
}

// Flush returns a command that starts a timer for every callback scheduled
// since the previous Flush, or nil when nothing is queued.
func (t *Tea) Flush() tea.Cmd {
	if len(t.queued) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(t.queued))
	for _, q := range t.queued {
		id := q.id
		cmds = append(cmds, tea.Tick(q.delay, func(time.Time) tea.Msg {
			return FiredMsg{ID: id}
		}))
	}
	t.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback registered for msg. It reports false for unknown
// or already fired ids.
func (t *Tea) Fire(msg FiredMsg) bool {
	fn, ok := t.callbacks[msg.ID]
	if !ok {
		return false
	}
	delete(t.callbacks, msg.ID)
	fn()
	return true
}

// Outstanding returns the number of callbacks that have not fired.
func (t *Tea) Outstanding() int {
	return len(t.callbacks)
}
