package app

import (
	"time"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/notify"
)

// maxToasts bounds how many toasts are shown at once.
const maxToasts = 3

type toast struct {
	id uint64
	n  notify.Notification
}

// Toaster is a notify.Notifier that keeps notifications on screen for a
// fixed lifetime. Expiry runs on the scheduler, so it must only be used
// from the UI goroutine.
type Toaster struct {
	sched    clock.Scheduler
	lifetime time.Duration
	nextID   uint64
	toasts   []toast
}

var _ notify.Notifier = (*Toaster)(nil)

// NewToaster creates a Toaster whose toasts expire after lifetime.
func NewToaster(sched clock.Scheduler, lifetime time.Duration) *Toaster {
	return &Toaster{sched: sched, lifetime: lifetime}
}

// Notify shows n and schedules its removal.
func (t *Toaster) Notify(n notify.Notification) {
	t.nextID++
	id := t.nextID
	t.toasts = append(t.toasts, toast{id: id, n: n})
	if len(t.toasts) > maxToasts {
		t.toasts = t.toasts[len(t.toasts)-maxToasts:]
	}
	t.sched.Schedule(t.lifetime, func() { t.dismiss(id) })
}

func (t *Toaster) dismiss(id uint64) {
	for i, ts := range t.toasts {
		if ts.id == id {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			return
		}
	}
}

// Active returns the visible notifications, oldest first.
func (t *Toaster) Active() []notify.Notification {
	out := make([]notify.Notification, len(t.toasts))
	for i, ts := range t.toasts {
		out[i] = ts.n
	}
	return out
}
